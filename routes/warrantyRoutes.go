package routes

import (
	"github.com/FloresaZogaj1/topbackend/controllers"
	"github.com/FloresaZogaj1/topbackend/middlewares"
	"github.com/gin-gonic/gin"
)

func WarrantyRoutes(server *gin.Engine) {
	warranty := server.Group("/api/warranty")
	{
		// the shop form posts without a login; a token is attached when present
		warranty.POST("/from-form", middlewares.OptionalAuth(), controllers.CreateWarrantyFromForm)

		warranty.GET("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetWarranties)
		warranty.GET("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetWarranty)
		warranty.PUT("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateWarranty)
		warranty.DELETE("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteWarranty)
	}
}
