// Package main: Handler katmanı başlatma.
package main

import "github.com/akinalp/mqvi-directory/handlers"

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Server   *handlers.ServerHandler
	Category *handlers.CategoryHandler
}

// initHandlers, tüm handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services) *Handlers {
	return &Handlers{
		Server:   handlers.NewServerHandler(svcs.Server),
		Category: handlers.NewCategoryHandler(svcs.Category),
	}
}
