package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Inputs ---

// CreateProductInput is the body of POST /products.
// Only presence is checked: name, price and categoryId must be sent.
type CreateProductInput struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  *int64           `json:"categoryId" binding:"required"`
	ImageURL    *string          `json:"imageUrl"`
	SKU         *string          `json:"sku"`
	Weight      *float64         `json:"weight"`
	Dimensions  *string          `json:"dimensions"`
	IsActive    *bool            `json:"isActive"`
}

// UpdateProductInput is the body of PUT and PATCH /products/:id.
// Only keys present in the body change. The nullable columns use Field so a
// key sent as null clears the column; for the required columns a null is
// treated like a missing key.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description Field[string]    `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"categoryId"`
	ImageURL    Field[string]    `json:"imageUrl"`
	SKU         Field[string]    `json:"sku"`
	Weight      Field[float64]   `json:"weight"`
	Dimensions  Field[string]    `json:"dimensions"`
	IsActive    *bool            `json:"isActive"`
}

// Columns returns the store columns to write, keyed by column name.
// A nullable key sent as null maps to nil (SQL NULL).
func (in UpdateProductInput) Columns() map[string]interface{} {
	cols := map[string]interface{}{}

	// --- Required columns ---
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.Price != nil {
		cols["price"] = *in.Price
	}
	if in.CategoryID != nil {
		cols["category_id"] = *in.CategoryID
	}
	if in.IsActive != nil {
		cols["is_active"] = *in.IsActive
	}

	// --- Nullable columns ---
	if in.Description.Set {
		cols["description"] = in.Description.column()
	}
	if in.ImageURL.Set {
		cols["image_url"] = in.ImageURL.column()
	}
	if in.SKU.Set {
		cols["sku"] = in.SKU.column()
	}
	if in.Weight.Set {
		cols["weight"] = in.Weight.column()
	}
	if in.Dimensions.Set {
		cols["dimensions"] = in.Dimensions.column()
	}
	return cols
}

// --- Outputs ---

// ProductEntity is the client-facing shape of a product.
// Inventory is null when the product has no stock record.
type ProductEntity struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
	ImageURL    *string         `json:"imageUrl"`
	SKU         *string         `json:"sku"`
	Weight      *float64        `json:"weight"`
	Dimensions  *string         `json:"dimensions"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Category  *CategoryEntity  `json:"category,omitempty"`
	Inventory *InventoryEntity `json:"inventory"`
}

// ProductDetailEntity is a single product with its reviews, oldest first.
// Reviews is always an array, empty when there are none.
type ProductDetailEntity struct {
	ProductEntity
	Reviews []ReviewEntity `json:"reviews"`
}

// MessageResponse confirms an operation that has no entity to return.
type MessageResponse struct {
	Message string `json:"message"`
}
