package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/service"
)

// GetAllProducts handles GET /products with optional query filters.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	// 1. --- Parse Query Filters ---
	filters, err := parseProductFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Fetch From Service ---
	products, err := h.Products.GetAllProducts(c.Request.Context(), filters)
	if err != nil {
		h.Log.Error("Error in getAllProducts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /products/:id
func (h *Handlers) GetProductByID(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	product, err := h.Products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "getProductById", err, "Failed to get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *Handlers) CreateProduct(c *gin.Context) {
	// 1. --- Bind Input ---
	// Only presence of name, price and categoryId is checked.
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Create Product ---
	product, err := h.Products.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.Log.Error("Error in createProduct", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	// 1. --- Validate ID ---
	id, ok := productID(c)
	if !ok {
		return
	}

	// 2. --- Bind Input ---
	// Keys left out of the body are not touched.
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Apply Update ---
	product, err := h.Products.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		h.fail(c, "updateProduct", err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdatePartialProduct handles PATCH /products/:id
func (h *Handlers) UpdatePartialProduct(c *gin.Context) {
	// 1. --- Validate ID ---
	id, ok := productID(c)
	if !ok {
		return
	}

	// 2. --- Bind Input ---
	// Keys left out of the body are not touched.
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Apply Update ---
	product, err := h.Products.UpdatePartialProduct(c.Request.Context(), id, input)
	if err != nil {
		h.fail(c, "updatePartialProduct", err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// SoftDeleteProduct handles PATCH /products/:id/soft-delete
func (h *Handlers) SoftDeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	res, err := h.Products.SoftDeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "softDeleteProduct", err, "Failed to deactivate product")
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteProduct handles DELETE /products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	res, err := h.Products.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "deleteProduct", err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, res)
}

// --- Helpers ---

// fail writes 404 with the not-found message, or 500 with a generic one.
func (h *Handlers) fail(c *gin.Context, op string, err error, generic string) {
	h.Log.Error("Error in "+op, zap.Error(err))
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return id, true
}

// parseProductFilters reads categoryId, minPrice, maxPrice, search and
// isActive. Empty values are ignored; isActive other than true/false is ignored.
func parseProductFilters(c *gin.Context) (*models.ProductFilters, error) {
	f := &models.ProductFilters{}

	if v := strings.TrimSpace(c.Query("categoryId")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid categoryId %q", v)
		}
		f.CategoryID = &id
	}
	if v := strings.TrimSpace(c.Query("minPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minPrice %q", v)
		}
		f.MinPrice = &p
	}
	if v := strings.TrimSpace(c.Query("maxPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maxPrice %q", v)
		}
		f.MaxPrice = &p
	}
	f.Search = c.Query("search")

	switch c.Query("isActive") {
	case "true":
		active := true
		f.IsActive = &active
	case "false":
		active := false
		f.IsActive = &active
	}
	return f, nil
}
