// Package main: Service katmanı başlatma.
package main

import (
	"database/sql"

	"github.com/akinalp/mqvi-directory/config"
	"github.com/akinalp/mqvi-directory/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	Server   services.ServerService
	Category services.CategoryService
}

// initServices, tüm service'leri oluşturur.
func initServices(db *sql.DB, repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     services.NewAuthService(cfg.JWT.Secret),
		Server:   services.NewServerService(db, repos.Server, repos.Channel),
		Category: services.NewCategoryService(repos.Category),
	}
}
