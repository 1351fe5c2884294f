package models

// Command is a tagged user action. The presentation layer builds one
// command per discrete user event and hands it to the dispatcher; it
// never mutates engine state directly.
type Command interface {
	isCommand()
}

type SelectCategoryCommand struct {
	Category string `json:"category" validate:"required"`
}

// AddToCartCommand carries an opaque product id; ids absent from the
// catalog (including zero) are handled by the engine as silent no-ops.
type AddToCartCommand struct {
	ProductID int64 `json:"product_id"`
}

type RemoveFromCartCommand struct {
	Index int `json:"index"`
}

type OpenDetailCommand struct {
	ProductID int64 `json:"product_id"`
}

type CloseDetailCommand struct{}

type OpenCartPanelCommand struct{}

type CloseCartPanelCommand struct{}

type SetBuyerInfoCommand struct {
	Buyer BuyerInfo `json:"buyer"`
}

type CheckoutCommand struct{}

func (SelectCategoryCommand) isCommand() {}
func (AddToCartCommand) isCommand()      {}
func (RemoveFromCartCommand) isCommand() {}
func (OpenDetailCommand) isCommand()     {}
func (CloseDetailCommand) isCommand()    {}
func (OpenCartPanelCommand) isCommand()  {}
func (CloseCartPanelCommand) isCommand() {}
func (SetBuyerInfoCommand) isCommand()   {}
func (CheckoutCommand) isCommand()       {}
