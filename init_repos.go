// Package main: Repository katmanı başlatma.
package main

import (
	"database/sql"

	"github.com/akinalp/mqvi-directory/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	User     repository.UserRepository
	Server   repository.ServerRepository
	Channel  repository.ChannelRepository
	Category repository.CategoryRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// Hepsi aynı *sql.DB pool'unu paylaşır.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:     repository.NewSQLiteUserRepo(conn),
		Server:   repository.NewSQLiteServerRepo(conn),
		Channel:  repository.NewSQLiteChannelRepo(conn),
		Category: repository.NewSQLiteCategoryRepo(conn),
	}
}
