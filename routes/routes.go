package routes

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/controllers"
	"github.com/blogicum/blogicum/middleware"
)

// NewRouter builds the gin engine: middleware, templates, media and
// the full route table.
func NewRouter(db *gorm.DB, cfg config.Config, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Session(cfg.SecretKey))

	r.SetFuncMap(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	})
	r.LoadHTMLGlob(templatesGlob)
	r.Static("/media", cfg.MediaRoot)

	SetupRoutes(r, db, cfg)
	return r
}

// SetupRoutes wires every handler into the engine.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	blogController := controllers.NewBlogController(db)
	profileController := controllers.NewProfileController(db, cfg)
	postController := controllers.NewPostController(db, cfg)
	commentController := controllers.NewCommentController(db)
	authController := controllers.NewAuthController(db, cfg)
	pagesController := controllers.NewPagesController()

	SetupBlogRoutes(r, blogController, profileController)
	SetupPostRoutes(r, blogController, postController, commentController)
	SetupAuthRoutes(r, authController)
	SetupPagesRoutes(r, pagesController)

	r.NoRoute(controllers.NotFoundHandler)
}
