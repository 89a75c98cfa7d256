package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/controllers"
)

func SetupPagesRoutes(r *gin.Engine, pagesController *controllers.PagesController) {
	pages := r.Group("/pages")
	{
		pages.GET("/about", pagesController.About)
		pages.GET("/rules", pagesController.Rules)
	}
}
