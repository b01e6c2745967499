package routes

import (
	"github.com/FloresaZogaj1/topbackend/controllers"
	"github.com/FloresaZogaj1/topbackend/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/users", controllers.GetUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.PATCH("/users/:id/role", controllers.UpdateUserRole)
		admin.PATCH("/users/:id/block", controllers.BlockUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		admin.GET("/stats", controllers.GetStats)
	}
}
