package routes

import (
	"github.com/FloresaZogaj1/topbackend/controllers"
	"github.com/FloresaZogaj1/topbackend/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/api/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)

		products.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteProduct)
		products.POST("/:id/images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadProductImages)
	}
}
