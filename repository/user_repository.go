package repository

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
)

// UserRepository, kullanıcı okuma işlemleri için interface.
// Auth middleware token'daki user ID'nin hâlâ var olduğunu bununla doğrular.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}
