package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the store model for the 'products' table.
// Nullable columns are pointers so they come back as nil, not zero values.
type Product struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;size:255;not null"`
	Description *string         `gorm:"column:description;type:text"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	CategoryID  int64           `gorm:"column:category_id;not null;index"`
	ImageURL    *string         `gorm:"column:image_url;size:1024"`
	SKU         *string         `gorm:"column:sku;size:100;uniqueIndex"`
	Weight      *float64        `gorm:"column:weight"`
	Dimensions  *string         `gorm:"column:dimensions;size:100"`

	// No gorm default here: a default tag makes gorm skip an explicit false on insert.
	IsActive bool `gorm:"column:is_active;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// --- Relations (loaded on demand) ---
	Category  Category   `gorm:"foreignKey:CategoryID;references:CategoryID"`
	Inventory *Inventory `gorm:"foreignKey:ProductID;references:ProductID"`
	Reviews   []Review   `gorm:"foreignKey:ProductID;references:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

// ProductFilters is the query object for listing products. Nil fields are not applied.
type ProductFilters struct {
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	IsActive   *bool
}

// IsEmpty reports whether no filter is set.
func (f *ProductFilters) IsEmpty() bool {
	return f == nil ||
		(f.CategoryID == nil && f.MinPrice == nil && f.MaxPrice == nil && f.Search == "" && f.IsActive == nil)
}
