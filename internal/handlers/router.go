package handlers

import (
	"food_ordering/internal/middleware"
	"food_ordering/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the full HTTP surface. The chat UI is a browser client,
// so CORS is open by default.
func SetupRouter(orderHandler *OrderHandler, userHandler *UserHandler, userService services.UserService) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	orderAPI := router.Group("/api/v1/order")
	{
		orderAPI.GET("/menu", orderHandler.GetMenu)
		orderAPI.POST("/menu", orderHandler.CreateMenuItem)

		orderAPI.GET("/cartitems", orderHandler.GetCart)
		orderAPI.POST("/cartitems", orderHandler.AddToCart)
		orderAPI.PUT("/cartitems", orderHandler.UpdateCart)
		orderAPI.DELETE("/cartitems", orderHandler.ClearCart)
		orderAPI.DELETE("/cartitem", orderHandler.DeleteCartItem)

		orderAPI.POST("/orders", orderHandler.CreateOrder)
		orderAPI.POST("/orders_cart", orderHandler.CreateOrderFromCart)
		orderAPI.GET("/orders", orderHandler.GetMostRecentOrder)
		orderAPI.GET("/orders/history", orderHandler.OrderHistory)
	}

	userAPI := router.Group("/api/v1/user")
	{
		userAPI.POST("/register", userHandler.Register)
		userAPI.POST("/login", userHandler.Login)
		userAPI.POST("/logout", userHandler.Logout)

		chat := userAPI.Group("/chat", middleware.Auth(userService))
		chat.GET("", userHandler.GetChat)
		chat.POST("", userHandler.PostChat)
	}

	return router
}
