package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/controllers"
	"github.com/blogicum/blogicum/middleware"
)

func SetupPostRoutes(r *gin.Engine, blogController *controllers.BlogController, postController *controllers.PostController, commentController *controllers.CommentController) {
	r.GET("/posts/:id", blogController.PostDetail)

	protected := r.Group("/posts")
	protected.Use(middleware.LoginRequired())
	{
		protected.GET("/create", postController.CreatePostPage)
		protected.POST("/create", postController.CreatePost)
		protected.GET("/:id/edit", postController.EditPostPage)
		protected.POST("/:id/edit", postController.EditPost)
		protected.GET("/:id/delete", postController.DeletePostPage)
		protected.POST("/:id/delete", postController.DeletePost)

		protected.POST("/:id/comment", commentController.AddComment)
		protected.GET("/:id/edit_comment/:comment_id", commentController.EditCommentPage)
		protected.POST("/:id/edit_comment/:comment_id", commentController.EditComment)
		protected.GET("/:id/delete_comment/:comment_id", commentController.DeleteCommentPage)
		protected.POST("/:id/delete_comment/:comment_id", commentController.DeleteComment)
	}
}
