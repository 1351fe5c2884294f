package models

import "time"

type ToastState string

const (
	ToastVisible   ToastState = "visible"
	ToastFadingOut ToastState = "fading_out"
	ToastRemoved   ToastState = "removed"
)

// Toast is a short-lived status message. Lifecycle is strictly
// visible -> fading_out -> removed; a removed toast is evicted from the
// queue and never revisited.
type Toast struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	State     ToastState `json:"state"`
}
