package routes

import (
	"github.com/FloresaZogaj1/topbackend/controllers"
	"github.com/FloresaZogaj1/topbackend/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders")
	{
		// checkout is public; a token, when present, links the order to the user
		orders.POST("", middlewares.OptionalAuth(), controllers.CreateOrder)

		orders.GET("/mine", middlewares.RequireAuth(), controllers.GetMyOrders)
		orders.GET("/:id", middlewares.RequireAuth(), controllers.GetOrderByID)

		orders.GET("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetOrders)
		orders.PATCH("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
		orders.PUT("/:id/status", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
		orders.DELETE("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteOrder)
	}
}
