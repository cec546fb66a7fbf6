package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/repository"
)

// ProductService wraps the product repository with existence checks,
// entity mapping, logging and error translation.
type ProductService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, log: log.Named("products")}
}

// --- Reads ---

// GetAllProducts lists products matching filters. Store failures are logged
// and reported as ErrGetProducts.
func (s *ProductService) GetAllProducts(ctx context.Context, filters *models.ProductFilters) ([]models.ProductEntity, error) {
	products, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		s.log.Error("Error getting products", zap.Error(err))
		return nil, ErrGetProducts
	}
	return ToProductEntities(products), nil
}

// GetProductByID returns a *NotFoundError when the id does not exist.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.ProductDetailEntity, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Error getting product", zap.Int64("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if product == nil {
		return nil, &NotFoundError{ID: id}
	}
	d := ToProductDetailEntity(product)
	return &d, nil
}

// --- Writes ---

// CreateProduct inserts a product. isActive defaults to true; every store
// failure is reported as ErrCreateProduct.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.ProductEntity, error) {
	// 1. --- Build Model ---
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  derefInt64(input.CategoryID),
		ImageURL:    input.ImageURL,
		SKU:         input.SKU,
		Weight:      input.Weight,
		Dimensions:  input.Dimensions,
		IsActive:    true,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	// 2. --- Insert ---
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error("Error creating product", zap.Error(err))
		return nil, ErrCreateProduct
	}
	s.log.Info("Product created", zap.Int64("product_id", created.ProductID))
	e := ToProductEntity(created)
	return &e, nil
}

// UpdateProduct applies a full update payload.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, input models.UpdateProductInput) (*models.ProductEntity, error) {
	product, err := s.update(ctx, id, input.Columns())
	if err != nil {
		s.log.Error("Error updating product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	s.log.Info("Product updated", zap.Int64("product_id", id))
	return product, nil
}

// UpdatePartialProduct applies only the fields present in input.
func (s *ProductService) UpdatePartialProduct(ctx context.Context, id int64, input models.UpdateProductInput) (*models.ProductEntity, error) {
	product, err := s.update(ctx, id, input.Columns())
	if err != nil {
		s.log.Error("Error partially updating product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	s.log.Info("Product partially updated", zap.Int64("product_id", id))
	return product, nil
}

// SoftDeleteProduct marks the product inactive and keeps the row.
// Repeating it on an inactive product succeeds.
func (s *ProductService) SoftDeleteProduct(ctx context.Context, id int64) (*models.MessageResponse, error) {
	if _, err := s.update(ctx, id, map[string]interface{}{"is_active": false}); err != nil {
		s.log.Error("Error deactivating product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	s.log.Info("Product deactivated", zap.Int64("product_id", id))
	return &models.MessageResponse{Message: fmt.Sprintf("Product with ID %d successfully deactivated", id)}, nil
}

// DeleteProduct removes the product permanently.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (*models.MessageResponse, error) {
	// 1. --- Check Product Exists ---
	if err := s.ensureExists(ctx, id); err != nil {
		s.log.Error("Error deleting product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}

	// 2. --- Delete Row ---
	if err := s.repo.Delete(ctx, id); err != nil {
		err = s.translate(id, err)
		s.log.Error("Error deleting product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	s.log.Info("Product deleted", zap.Int64("product_id", id))
	return &models.MessageResponse{Message: fmt.Sprintf("Product with ID %d successfully deleted", id)}, nil
}

// --- Helpers ---

// update checks the product exists, then writes columns. The repository
// write is itself conditional on the row, so a concurrent delete between
// the two steps still ends in a not-found error.
func (s *ProductService) update(ctx context.Context, id int64, columns map[string]interface{}) (*models.ProductEntity, error) {
	// 1. --- Check Product Exists ---
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	// 2. --- Conditional Write ---
	updated, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		return nil, s.translate(id, err)
	}
	e := ToProductEntity(updated)
	return &e, nil
}

func (s *ProductService) ensureExists(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product %d: %w", id, err)
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}
	return nil
}

func (s *ProductService) translate(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return fmt.Errorf("product %d: %w", id, err)
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
