package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/utils"
)

// The error taxonomy is rendered as status pages: NotFound for absent
// or deliberately hidden resources, Forbidden for acknowledged ones.

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "pages/404.html", gin.H{"user": utils.GetUser(c)})
	c.Abort()
}

func renderForbidden(c *gin.Context) {
	c.HTML(http.StatusForbidden, "pages/403.html", gin.H{"user": utils.GetUser(c)})
	c.Abort()
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "pages/500.html", gin.H{"user": utils.GetUser(c)})
	c.Abort()
}

// NotFoundHandler backs the router's NoRoute fallback.
func NotFoundHandler(c *gin.Context) {
	renderNotFound(c)
}
