package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

// ProductRepository handles database operations for products
type ProductRepository interface {
	// FindAll returns every product matching the filters, with category and inventory attached.
	FindAll(ctx context.Context, filters *models.ProductFilters) ([]models.Product, error)

	// FindByID returns the product with category, inventory and reviews attached,
	// or nil when no such product exists.
	FindByID(ctx context.Context, id int64) (*models.Product, error)

	// Create inserts the product and returns it with its category attached.
	Create(ctx context.Context, product *models.Product) (*models.Product, error)

	// Update writes only the given columns and returns the row with its category attached.
	// Returns ErrNotFound if the row is gone.
	Update(ctx context.Context, id int64, columns map[string]interface{}) (*models.Product, error)

	// Delete removes the row permanently. Returns ErrNotFound if the row is gone.
	Delete(ctx context.Context, id int64) error
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context, filters *models.ProductFilters) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Scopes(applyProductFilters(filters)).
		Preload("Category").
		Preload("Inventory").
		Order("product_id ASC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Reviews.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "first_name", "last_name")
		}).
		Where("product_id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(product).Error; err != nil {
		return nil, err
	}
	if err := db.Where("category_id = ?", product.CategoryID).First(&product.Category).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update runs the write and the reload in one transaction. The WHERE clause is
// the existence check, so a row deleted concurrently surfaces as ErrNotFound.
func (r *GormProductRepository) Update(ctx context.Context, id int64, columns map[string]interface{}) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := make(map[string]interface{}, len(columns)+1)
		for k, v := range columns {
			values[k] = v
		}
		values["updated_at"] = time.Now()

		res := tx.Model(&models.Product{}).Where("product_id = ?", id).Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Category").Where("product_id = ?", id).First(&product).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("product_id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// applyProductFilters ANDs every set filter. Search matches name or
// description, case-insensitively, as a literal substring of the text as sent.
func applyProductFilters(f *models.ProductFilters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.IsEmpty() {
			return db
		}
		if f.CategoryID != nil {
			db = db.Where("category_id = ?", *f.CategoryID)
		}
		if f.IsActive != nil {
			db = db.Where("is_active = ?", *f.IsActive)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		if f.Search != "" {
			pattern := "%" + escapeLike(f.Search) + "%"
			if db.Dialector.Name() == "postgres" {
				db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
			} else {
				pattern = strings.ToLower(pattern)
				db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
			}
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
