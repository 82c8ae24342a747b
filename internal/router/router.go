package router

import (
	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/config"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/controller"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	productController  *controller.ProductController
	cartController     *controller.CartController
	wishlistController *controller.WishlistController
	checkoutController *controller.CheckoutController
	imageController    *controller.ImageController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	wishlistController *controller.WishlistController,
	checkoutController *controller.CheckoutController,
	imageController *controller.ImageController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		productController:  productController,
		cartController:     cartController,
		wishlistController: wishlistController,
		checkoutController: checkoutController,
		imageController:    imageController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "TRENDYBAZARR API is running",
		})
	})

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", r.authController.Register)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		// The product form and catalog live under /api/data, matching the
		// paths the admin and storefront clients call.
		data := api.Group("/data")
		data.Use(r.authMiddleware.Authenticate())
		{
			data.GET("/gets", r.productController.List)
			data.GET("/get/:id", r.productController.Get)

			data.POST("/upload",
				r.authMiddleware.RequireRole("admin"),
				r.productController.Upload,
			)
			data.PUT("/update/:id",
				r.authMiddleware.RequireRole("admin"),
				r.productController.Update,
			)
			data.DELETE("/delete/:id",
				r.authMiddleware.RequireRole("admin"),
				r.productController.Delete,
			)
			data.GET("/export",
				r.authMiddleware.RequireRole("admin"),
				r.productController.Export,
			)
		}

		cart := api.Group("/cart")
		cart.Use(r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.PUT("/:id", r.cartController.UpdateQuantity)
			cart.DELETE("/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}

		wishlist := api.Group("/wishlist")
		wishlist.Use(r.authMiddleware.Authenticate())
		{
			wishlist.GET("", r.wishlistController.GetWishlist)
			wishlist.POST("/toggle", r.wishlistController.Toggle)
		}

		checkout := api.Group("/checkout")
		checkout.Use(r.authMiddleware.Authenticate())
		{
			checkout.POST("", r.checkoutController.Checkout)
		}

		images := api.Group("/images")
		images.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			images.POST("/upload", r.imageController.Upload)
			images.POST("/presign", r.imageController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
