package repository

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
)

// CategoryRepository, kategori veritabanı işlemleri için interface.
type CategoryRepository interface {
	// List, tüm kategorileri isme göre sıralı döner.
	List(ctx context.Context) ([]models.Category, error)
}
