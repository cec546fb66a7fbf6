package service

import (
	"github.com/gosimple/slug"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

// ToProductEntity maps a store row to the client shape. product_id becomes id,
// category_id becomes categoryId, and loaded relations are carried along.
func ToProductEntity(p *models.Product) models.ProductEntity {
	e := models.ProductEntity{
		ID:          p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		SKU:         p.SKU,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	// A zero id means the relation was not loaded.
	if p.Category.CategoryID != 0 {
		c := ToCategoryEntity(&p.Category)
		e.Category = &c
	}
	if p.Inventory != nil {
		inv := ToInventoryEntity(p.Inventory)
		e.Inventory = &inv
	}
	return e
}

// ToProductDetailEntity maps a product loaded with its reviews.
func ToProductDetailEntity(p *models.Product) models.ProductDetailEntity {
	d := models.ProductDetailEntity{
		ProductEntity: ToProductEntity(p),
		Reviews:       make([]models.ReviewEntity, 0, len(p.Reviews)),
	}
	for i := range p.Reviews {
		d.Reviews = append(d.Reviews, ToReviewEntity(&p.Reviews[i]))
	}
	return d
}

func ToProductEntities(products []models.Product) []models.ProductEntity {
	out := make([]models.ProductEntity, 0, len(products))
	for i := range products {
		out = append(out, ToProductEntity(&products[i]))
	}
	return out
}

func ToCategoryEntity(c *models.Category) models.CategoryEntity {
	return models.CategoryEntity{
		ID:               c.CategoryID,
		Name:             c.Name,
		Slug:             slug.Make(c.Name),
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
	}
}

func ToInventoryEntity(inv *models.Inventory) models.InventoryEntity {
	return models.InventoryEntity{
		ID:                inv.InventoryID,
		ProductID:         inv.ProductID,
		StockQuantity:     inv.StockQuantity,
		LowStockThreshold: inv.LowStockThreshold,
		LastRestockDate:   inv.LastRestockDate,
		NextRestockDate:   inv.NextRestockDate,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func ToReviewEntity(r *models.Review) models.ReviewEntity {
	return models.ReviewEntity{
		ID:        r.ReviewID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		User: models.ReviewerEntity{
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
		},
	}
}
