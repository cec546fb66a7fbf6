package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

// ProductService is the product use-case surface the handlers call.
type ProductService interface {
	GetAllProducts(ctx context.Context, filters *models.ProductFilters) ([]models.ProductEntity, error)
	GetProductByID(ctx context.Context, id int64) (*models.ProductDetailEntity, error)
	CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.ProductEntity, error)
	UpdateProduct(ctx context.Context, id int64, input models.UpdateProductInput) (*models.ProductEntity, error)
	UpdatePartialProduct(ctx context.Context, id int64, input models.UpdateProductInput) (*models.ProductEntity, error)
	SoftDeleteProduct(ctx context.Context, id int64) (*models.MessageResponse, error)
	DeleteProduct(ctx context.Context, id int64) (*models.MessageResponse, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.CategoryEntity, error)
}

type AuthService interface {
	Login(ctx context.Context, input models.LoginInput) (*models.LoginResult, error)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Products   ProductService
	Categories CategoryService
	Auth       AuthService
	Log        *zap.Logger
}
