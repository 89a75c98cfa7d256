package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/controllers"
	"github.com/blogicum/blogicum/middleware"
)

func SetupBlogRoutes(r *gin.Engine, blogController *controllers.BlogController, profileController *controllers.ProfileController) {
	r.GET("/", blogController.Index)
	r.GET("/category/:slug", blogController.CategoryPosts)
	r.GET("/profile/:username", profileController.Profile)

	profile := r.Group("/edit_profile")
	profile.Use(middleware.LoginRequired())
	{
		profile.GET("", profileController.EditProfilePage)
		profile.POST("", profileController.EditProfile)
	}
}
