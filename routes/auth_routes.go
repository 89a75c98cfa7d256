package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/controllers"
)

func SetupAuthRoutes(r *gin.Engine, authController *controllers.AuthController) {
	auth := r.Group("/auth")
	{
		auth.GET("/registration", authController.RegisterPage)
		auth.POST("/registration", authController.Register)
		auth.GET("/login", authController.LoginPage)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}
}
