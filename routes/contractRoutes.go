package routes

import (
	"github.com/FloresaZogaj1/topbackend/controllers"
	"github.com/FloresaZogaj1/topbackend/middlewares"
	"github.com/gin-gonic/gin"
)

func ContractRoutes(server *gin.Engine) {
	contracts := server.Group("/api/contracts")
	{
		contracts.POST("/softsave", middlewares.OptionalAuth(), controllers.CreateSoftSaveContract)

		contracts.GET("/softsave", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetSoftSaveContracts)
		contracts.GET("/softsave/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.GetSoftSaveContract)
		contracts.PUT("/softsave/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateSoftSaveContract)
		contracts.DELETE("/softsave/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteSoftSaveContract)
	}
}
