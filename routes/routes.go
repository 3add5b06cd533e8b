package routes

import (
	"liquor-store-api/handlers"
	"liquor-store-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/admin/login", handlers.AdminLogin)

		// Catalog
		public.GET("/liquors", handlers.ListLiquors)
		public.GET("/liquors/:id", handlers.GetLiquor)
		public.POST("/liquors", handlers.CreateLiquor)
		public.PUT("/liquors/:id", handlers.UpdateLiquor)
		public.DELETE("/liquors/:id", handlers.DeleteLiquor)

		// Orders (interest notifications)
		public.POST("/orders", handlers.CreateOrder)
		public.GET("/orders", handlers.GetOrders)
		public.GET("/orders/stream", handlers.StreamOrders)
		public.PUT("/orders/:id", handlers.UpdateOrderStatus)
	}

	// ── Admin dashboard routes ─────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/liquors", handlers.AdminListLiquors)
		admin.GET("/users", handlers.AdminListUsers)
		admin.GET("/orders/summary", handlers.AdminOrderSummary)
	}
}
