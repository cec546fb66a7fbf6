package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAll returns every category ordered by name.
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}
