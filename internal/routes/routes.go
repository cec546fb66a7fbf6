package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/handlers"
	"github.com/01moynul/eshop-catalog-golang/internal/middleware"
)

// Options carries what the router needs besides the handlers.
type Options struct {
	Tokens     middleware.TokenValidator
	CORSOrigin string
	Log        *zap.Logger
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.New()

	// 1. Access log wraps everything, preflight requests included.
	router.Use(middleware.RequestLogger(opts.Log))
	router.Use(middleware.Recovery(opts.Log))

	// 2. CORS before any auth group so preflight requests are answered here.
	router.Use(middleware.CORSMiddleware(opts.CORSOrigin))
	router.Use(middleware.SecurityHeaders())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Assure Shop API"})
	})

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		api.POST("/auth/login", h.Login)

		// --- Category Routes (Public) ---
		api.GET("/categories", h.GetAllCategories)

		// --- Public Product Routes ---
		api.GET("/products", h.GetAllProducts)
		api.GET("/products/:id", h.GetProductByID)

		// --- Admin-Only Product Routes ---
		admin := api.Group("/products")
		admin.Use(middleware.AuthMiddleware(opts.Tokens))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", h.CreateProduct)
			admin.PUT("/:id", h.UpdateProduct)
			admin.PATCH("/:id", h.UpdatePartialProduct)
			admin.PATCH("/:id/soft-delete", h.SoftDeleteProduct)
			admin.DELETE("/:id", h.DeleteProduct)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found - " + c.Request.URL.Path})
	})

	return router
}
