package models

import "time"

// Inventory is the store model for the 'inventory' table (one row per product at most).
type Inventory struct {
	InventoryID       int64      `gorm:"column:inventory_id;primaryKey;autoIncrement"`
	ProductID         int64      `gorm:"column:product_id;not null;uniqueIndex"`
	StockQuantity     int        `gorm:"column:stock_quantity;not null"`
	LowStockThreshold *int       `gorm:"column:low_stock_threshold"`
	LastRestockDate   *time.Time `gorm:"column:last_restock_date"`
	NextRestockDate   *time.Time `gorm:"column:next_restock_date"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// InventoryEntity is the client-facing shape of a product's stock record.
type InventoryEntity struct {
	ID                int64      `json:"id"`
	ProductID         int64      `json:"productId"`
	StockQuantity     int        `json:"stockQuantity"`
	LowStockThreshold *int       `json:"lowStockThreshold"`
	LastRestockDate   *time.Time `json:"lastRestockDate"`
	NextRestockDate   *time.Time `json:"nextRestockDate"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
