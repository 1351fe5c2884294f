package main

import (
	"github.com/tokoku/storefront/internal/app"
	"github.com/tokoku/storefront/internal/server"
)

func main() {
	app.Invoke(
		server.StartServer,
	).Run()
}
