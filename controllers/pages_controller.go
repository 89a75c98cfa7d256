package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/utils"
)

// PagesController serves the static pages.
type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

func (pc *PagesController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "pages/about.html", gin.H{"user": utils.GetUser(c)})
}

func (pc *PagesController) Rules(c *gin.Context) {
	c.HTML(http.StatusOK, "pages/rules.html", gin.H{"user": utils.GetUser(c)})
}
