package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
)

func TestToProductEntity_RenamesAndNestsRelations(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	threshold := 5
	p := &models.Product{
		ProductID:  7,
		Name:       "Blender",
		Price:      decimal.RequireFromString("49.90"),
		CategoryID: 2,
		SKU:        strPtr("BLD-7"),
		IsActive:   true,
		CreatedAt:  created,
		UpdatedAt:  created,
		Category:   models.Category{CategoryID: 2, Name: "Kitchen & Dining"},
		Inventory: &models.Inventory{
			InventoryID: 1, ProductID: 7, StockQuantity: 12, LowStockThreshold: &threshold,
		},
		Reviews: []models.Review{
			{ReviewID: 1, ProductID: 7, UserID: 3, Rating: 5, Comment: strPtr("Great"), User: models.User{UserID: 3, FirstName: "Ana", LastName: "Ruiz"}},
		},
	}

	e := ToProductDetailEntity(p)

	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, int64(2), e.CategoryID)
	require.NotNil(t, e.Category)
	assert.Equal(t, "kitchen-and-dining", e.Category.Slug)
	require.NotNil(t, e.Inventory)
	assert.Equal(t, 12, e.Inventory.StockQuantity)
	require.Len(t, e.Reviews, 1)
	assert.Equal(t, "Ana", e.Reviews[0].User.FirstName)

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, float64(2), body["categoryId"])
	assert.Equal(t, "49.9", body["price"])
	assert.Contains(t, body, "isActive")
	assert.Contains(t, body, "imageUrl")
	assert.NotContains(t, body, "product_id")
	assert.NotContains(t, body, "category_id")
}

func TestToProductEntity_AbsentRelations(t *testing.T) {
	bare := &models.Product{ProductID: 1, Name: "Bare", CategoryID: 4}
	e := ToProductEntity(bare)

	assert.Nil(t, e.Category)
	assert.Nil(t, e.Inventory)

	raw, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"inventory":null`)
	assert.NotContains(t, string(raw), `"reviews"`)

	// Single-product reads always carry a reviews array.
	raw, err = json.Marshal(ToProductDetailEntity(bare))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"reviews":[]`)
	assert.Contains(t, string(raw), `"id":1`)
}

func TestBuildCategoryTree(t *testing.T) {
	electronics := int64(1)
	phones := int64(2)
	missing := int64(99)
	categories := []models.Category{
		{CategoryID: 1, Name: "Electronics"},
		{CategoryID: 2, Name: "Phones", ParentCategoryID: &electronics},
		{CategoryID: 3, Name: "Smart Phones", ParentCategoryID: &phones},
		{CategoryID: 4, Name: "Garden"},
		{CategoryID: 5, Name: "Orphan", ParentCategoryID: &missing},
	}

	tree := BuildCategoryTree(categories)

	require.Len(t, tree, 3)
	assert.Equal(t, "electronics", tree[0].Slug)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Phones", tree[0].Children[0].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "smart-phones", tree[0].Children[0].Children[0].Slug)
	assert.Equal(t, "Garden", tree[1].Name)
	assert.Empty(t, tree[1].Children)
	assert.Equal(t, "Orphan", tree[2].Name)
}
