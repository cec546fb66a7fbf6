package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/repository"
)

// mockProductRepository is a testify mock of repository.ProductRepository.
type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context, filters *models.ProductFilters) ([]models.Product, error) {
	args := m.Called(ctx, filters)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if fn, ok := args.Get(0).(func(context.Context, *models.Product) *models.Product); ok {
		return fn(ctx, product), args.Error(1)
	}
	created, _ := args.Get(0).(*models.Product)
	return created, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, id int64, columns map[string]interface{}) (*models.Product, error) {
	args := m.Called(ctx, id, columns)
	updated, _ := args.Get(0).(*models.Product)
	return updated, args.Error(1)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memProductRepository is an in-memory ProductRepository for lifecycle tests.
type memProductRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]models.Product
}

func newMemProductRepository() *memProductRepository {
	return &memProductRepository{nextID: 1, products: map[int64]models.Product{}}
}

func (r *memProductRepository) FindAll(_ context.Context, f *models.ProductFilters) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func matches(p models.Product, f *models.ProductFilters) bool {
	if f.IsEmpty() {
		return true
	}
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(decimal.NewFromFloat(*f.MinPrice)) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(decimal.NewFromFloat(*f.MaxPrice)) {
		return false
	}
	if q := strings.ToLower(f.Search); q != "" {
		desc := ""
		if p.Description != nil {
			desc = *p.Description
		}
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(desc), q) {
			return false
		}
	}
	return true
}

func (r *memProductRepository) FindByID(_ context.Context, id int64) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepository) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	product.ProductID = r.nextID
	product.CreatedAt, product.UpdatedAt = now, now
	product.Category = models.Category{CategoryID: product.CategoryID, Name: "Electronics"}
	r.nextID++
	r.products[product.ProductID] = *product
	return product, nil
}

func (r *memProductRepository) Update(_ context.Context, id int64, columns map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range columns {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = optionalString(v)
		case "price":
			p.Price = v.(decimal.Decimal)
		case "category_id":
			p.CategoryID = v.(int64)
		case "is_active":
			p.IsActive = v.(bool)
		case "sku":
			p.SKU = optionalString(v)
		case "image_url":
			p.ImageURL = optionalString(v)
		case "dimensions":
			p.Dimensions = optionalString(v)
		case "weight":
			if v == nil {
				p.Weight = nil
			} else {
				w := v.(float64)
				p.Weight = &w
			}
		}
	}
	p.UpdatedAt = time.Now()
	r.products[id] = p
	return &p, nil
}

// optionalString maps a column value to a nullable field; nil means NULL.
func optionalString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

func (r *memProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}
