package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/service"
)

// Login handles POST /auth/login
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind Input ---
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Check Credentials ---
	// Unknown email, wrong password and an unusable stored hash all answer 401.
	res, err := h.Auth.Login(c.Request.Context(), input)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		h.Log.Error("Error in login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}
	c.JSON(http.StatusOK, res)
}
