package api

import (
	"net/http"

	"comandas-be/internal/logger"
	"comandas-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with the full middleware chain. limiter may be nil.
func NewRouter(h *Handler, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.Recovery(),
		logger.RequestIDMiddleware(),
		logger.LoggingMiddleware(),
		middleware.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}

	menuRoutes := api.Group("/menu")
	menuRoutes.GET("", h.listDishes)
	menuRoutes.POST("", h.createDish)
	menuRoutes.GET("/:id", h.getDish)
	menuRoutes.PUT("/:id", h.updateDish)
	menuRoutes.DELETE("/:id", h.deleteDish)

	categories := api.Group("/categories")
	categories.GET("", h.listCategories)
	categories.POST("", h.createCategory)
	categories.GET("/:id", h.getCategory)
	categories.PUT("/:id", h.updateCategory)
	categories.DELETE("/:id", h.deleteCategory)

	orders := api.Group("/orders")
	orders.GET("", h.listOrders)
	orders.POST("", h.createOrder)
	orders.GET("/:id", h.getOrder)
	orders.PATCH("/:id/status", h.updateOrderStatus)
	orders.PATCH("/:id/payment", h.updatePaymentStatus)
	orders.PUT("/:id/items", h.editOrderLines)
	orders.POST("/:id/items", h.addOrderItem)
	orders.PATCH("/:id/items/:dishId", h.setOrderItemQuantity)
	orders.DELETE("/:id", h.deleteOrder)
	orders.GET("/:id/ticket", h.orderTicket)

	purchases := api.Group("/purchases")
	purchases.GET("", h.listPurchases)
	purchases.POST("", h.createPurchase)
	purchases.GET("/:id", h.getPurchase)
	purchases.PATCH("/:id/status", h.updatePurchaseStatus)

	clients := api.Group("/clients")
	clients.GET("", h.listClients)
	clients.POST("", h.createClient)
	clients.GET("/:id", h.getClient)
	clients.PUT("/:id", h.updateClient)
	clients.PATCH("/:id/toggle", h.toggleClient)
	clients.DELETE("/:id", h.deleteClient)
	clients.GET("/:id/stats", h.clientStats)

	users := api.Group("/users")
	users.GET("", h.listUsers)
	users.POST("", h.createUser)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.PATCH("/:id/toggle", h.toggleUser)
	users.DELETE("/:id", h.deleteUser)
	api.GET("/roles/:role/permissions", h.rolePermissions)

	restaurants := api.Group("/restaurants")
	restaurants.GET("", h.listRestaurants)
	restaurants.POST("", h.registerRestaurant)
	restaurants.GET("/summary", h.restaurantSummary)
	restaurants.GET("/:id", h.getRestaurant)
	restaurants.PATCH("/:id/toggle", h.toggleRestaurant)
	restaurants.DELETE("/:id", h.deleteRestaurant)

	reports := api.Group("/reports")
	reports.GET("/dashboard", h.dashboard)
	reports.GET("/categories", h.categoryDishCounts)

	return r
}
