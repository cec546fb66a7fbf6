package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAllCategories returns the category tree.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	tree, err := h.Categories.ListCategories(c.Request.Context())
	if err != nil {
		h.Log.Error("Error in getAllCategories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": tree})
}
