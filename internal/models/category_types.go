package models

import "time"

// Category is the store model for the 'categories' table.
// ParentCategoryID is nil for root categories.
type Category struct {
	CategoryID       int64     `gorm:"column:category_id;primaryKey;autoIncrement"`
	Name             string    `gorm:"column:name;size:100;not null"`
	Description      *string   `gorm:"column:description;type:text"`
	ParentCategoryID *int64    `gorm:"column:parent_category_id;index"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryEntity is the client-facing shape of a category.
type CategoryEntity struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      *string `json:"description"`
	ParentCategoryID *int64  `json:"parentCategoryId"`

	// Only populated by the category tree listing.
	Children []CategoryEntity `json:"children,omitempty"`
}
