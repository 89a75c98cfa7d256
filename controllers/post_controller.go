package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/forms"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

type PostController struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewPostController(db *gorm.DB, cfg config.Config) *PostController {
	return &PostController{DB: db, Cfg: cfg}
}

// CreatePostPage renders the empty post form.
func (pc *PostController) CreatePostPage(c *gin.Context) {
	pc.renderPostForm(c, &forms.PostForm{}, nil, nil, false)
}

// CreatePost creates a post owned by the requester and redirects to
// their profile.
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	form := pc.bindPostForm(c)

	imageName, err := pc.storeImage(c)
	if err != nil {
		renderServerError(c)
		return
	}
	form.ImageName = imageName

	if errs := form.Validate(); errs != nil {
		pc.renderPostForm(c, form, errs, nil, false)
		return
	}

	post := models.Post{
		AuthorID:  user.UserID,
		Published: models.Published{IsPublished: true},
	}
	form.Apply(&post)

	if err := pc.DB.Create(&post).Error; err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// EditPostPage renders the form prefilled from the post. Non-authors
// are sent to the detail page instead.
func (pc *PostController) EditPostPage(c *gin.Context) {
	post, ok := pc.authoredPost(c)
	if !ok {
		return
	}
	pc.renderPostForm(c, postFormFrom(post), nil, post, false)
}

// EditPost updates the post and redirects to its detail page.
func (pc *PostController) EditPost(c *gin.Context) {
	post, ok := pc.authoredPost(c)
	if !ok {
		return
	}

	form := pc.bindPostForm(c)

	imageName, err := pc.storeImage(c)
	if err != nil {
		renderServerError(c)
		return
	}
	form.ImageName = imageName

	if errs := form.Validate(); errs != nil {
		pc.renderPostForm(c, form, errs, post, false)
		return
	}

	updates := map[string]interface{}{
		"title":       form.Title,
		"text":        form.Text,
		"pub_date":    form.Date(),
		"category_id": form.Category(),
		"location_id": form.Location(),
	}
	if form.ImageName != "" {
		updates["image"] = form.ImageName
	}

	oldImage := post.Image
	if err := pc.DB.Model(post).Updates(updates).Error; err != nil {
		renderServerError(c)
		return
	}
	if form.ImageName != "" && oldImage != "" && oldImage != form.ImageName {
		pc.removeImage(oldImage)
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// DeletePostPage renders the delete confirmation.
func (pc *PostController) DeletePostPage(c *gin.Context) {
	post, ok := pc.ownedPostOrForbidden(c)
	if !ok {
		return
	}
	pc.renderPostForm(c, postFormFrom(post), nil, post, true)
}

// DeletePost removes the post and, in the same transaction, the
// comments attached to it.
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	post, ok := pc.ownedPostOrForbidden(c)
	if !ok {
		return
	}

	tx := pc.DB.Begin()

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		renderServerError(c)
		return
	}

	if err := tx.Delete(post).Error; err != nil {
		tx.Rollback()
		renderServerError(c)
		return
	}

	if err := tx.Commit().Error; err != nil {
		renderServerError(c)
		return
	}

	if post.Image != "" {
		pc.removeImage(post.Image)
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// removeImage unlinks a stored media file; a failure is logged, not
// surfaced, since the database state is already committed.
func (pc *PostController) removeImage(rel string) {
	if err := os.Remove(filepath.Join(pc.Cfg.MediaRoot, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("image", rel).Msg("Failed to remove post image")
	}
}

// authoredPost loads the addressed post for editing. A missing post is
// a 404; a foreign post redirects to its detail page without change.
func (pc *PostController) authoredPost(c *gin.Context) (*models.Post, bool) {
	post, ok := pc.loadPost(c)
	if !ok {
		return nil, false
	}
	if !utils.CanModify(utils.GetUser(c), post) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		c.Abort()
		return nil, false
	}
	return post, true
}

// ownedPostOrForbidden guards deletion: the post id is already in the
// URL, so a foreign post is acknowledged with 403 rather than hidden.
func (pc *PostController) ownedPostOrForbidden(c *gin.Context) (*models.Post, bool) {
	post, ok := pc.loadPost(c)
	if !ok {
		return nil, false
	}
	if !utils.CanModify(utils.GetUser(c), post) {
		renderForbidden(c)
		return nil, false
	}
	return post, true
}

func (pc *PostController) loadPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return nil, false
	}
	var post models.Post
	if err := pc.DB.First(&post, id).Error; err != nil {
		renderNotFound(c)
		return nil, false
	}
	return &post, true
}

func (pc *PostController) bindPostForm(c *gin.Context) *forms.PostForm {
	return &forms.PostForm{
		Title:      strings.TrimSpace(c.PostForm("title")),
		Text:       c.PostForm("text"),
		PubDate:    c.PostForm("pub_date"),
		CategoryID: c.PostForm("category"),
		LocationID: c.PostForm("location"),
	}
}

func postFormFrom(post *models.Post) *forms.PostForm {
	form := &forms.PostForm{
		Title:   post.Title,
		Text:    post.Text,
		PubDate: post.PubDate.Format("2006-01-02"),
	}
	if post.CategoryID != nil {
		form.CategoryID = strconv.FormatUint(uint64(*post.CategoryID), 10)
	}
	if post.LocationID != nil {
		form.LocationID = strconv.FormatUint(uint64(*post.LocationID), 10)
	}
	return form
}

func (pc *PostController) renderPostForm(c *gin.Context, form *forms.PostForm, errs forms.Errors, post *models.Post, confirmDelete bool) {
	var categories []models.Category
	pc.DB.Where("is_published = ?", true).Order("title").Find(&categories)

	var locations []models.Location
	pc.DB.Where("is_published = ?", true).Order("name").Find(&locations)

	c.HTML(http.StatusOK, "blog/create.html", gin.H{
		"user":           utils.GetUser(c),
		"form":           form,
		"errors":         errs,
		"post":           post,
		"categories":     categories,
		"locations":      locations,
		"confirm_delete": confirmDelete,
	})
}

// storeImage persists an uploaded post image under MEDIA_ROOT with a
// generated name. No upload is not an error.
func (pc *PostController) storeImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	rel := filepath.Join("posts_images", uuid.New().String()+ext)
	dst := filepath.Join(pc.Cfg.MediaRoot, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
