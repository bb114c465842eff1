package services

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/repository"
)

// CategoryService, kategori okuma iş mantığı.
// Client ?category= filtresi için geçerli değerleri buradan öğrenir.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService, constructor.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}
