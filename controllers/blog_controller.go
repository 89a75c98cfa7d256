package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/forms"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// postColumns annotates each listed post with its author username,
// category/location names and comment count in a single query.
const postColumns = `posts.*,
	users.username AS author_name,
	categories.title AS category_title,
	categories.slug AS category_slug,
	locations.name AS location_name,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count`

// visiblePosts filters to publicly visible posts: published, not
// future-dated, and in a published category or none at all.
func visiblePosts(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&models.Post{}).
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", now).
		Where("posts.category_id IS NULL OR categories.is_published = ?", true)
}

func listPosts(query *gorm.DB, page int) ([]PostRow, error) {
	var posts []PostRow
	err := query.
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN locations ON locations.id = posts.location_id").
		Order("posts.pub_date DESC").
		Offset((page - 1) * NumPostsOnPage).
		Limit(NumPostsOnPage).
		Find(&posts).Error
	return posts, err
}

// Index renders the public post listing, newest first.
func (bc *BlogController) Index(c *gin.Context) {
	now := time.Now().UTC()
	page := parsePage(c)

	var total int64
	if err := visiblePosts(bc.DB, now).Count(&total).Error; err != nil {
		renderServerError(c)
		return
	}

	posts, err := listPosts(visiblePosts(bc.DB, now), page)
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "blog/index.html", gin.H{
		"user":  utils.GetUser(c),
		"posts": posts,
		"page":  paginate(page, total),
	})
}

// PostDetail renders a post with its comments, oldest first. Hidden
// posts 404 for everyone but their author.
func (bc *BlogController) PostDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return
	}

	var post models.Post
	if err := bc.DB.Preload("Category").Preload("Location").Preload("Author").
		First(&post, id).Error; err != nil {
		renderNotFound(c)
		return
	}

	user := utils.GetUser(c)
	if !post.PubliclyVisible(time.Now().UTC()) && !utils.CanModify(user, &post) {
		renderNotFound(c)
		return
	}

	renderPostDetail(c, bc.DB, &post, &forms.CommentForm{}, nil, http.StatusOK)
}

// CategoryPosts lists a published category's visible posts.
func (bc *BlogController) CategoryPosts(c *gin.Context) {
	slug := c.Param("slug")
	if !utils.IsValidSlug(slug) {
		renderNotFound(c)
		return
	}

	var category models.Category
	if err := bc.DB.Where("slug = ? AND is_published = ?", slug, true).
		First(&category).Error; err != nil {
		renderNotFound(c)
		return
	}

	now := time.Now().UTC()
	page := parsePage(c)

	var total int64
	if err := visiblePosts(bc.DB, now).
		Where("posts.category_id = ?", category.ID).Count(&total).Error; err != nil {
		renderServerError(c)
		return
	}

	posts, err := listPosts(
		visiblePosts(bc.DB, now).Where("posts.category_id = ?", category.ID), page)
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "blog/category.html", gin.H{
		"user":     utils.GetUser(c),
		"category": category,
		"posts":    posts,
		"page":     paginate(page, total),
	})
}

// renderPostDetail is shared between the detail page and the comment
// handlers that re-render it with validation messages.
func renderPostDetail(c *gin.Context, db *gorm.DB, post *models.Post, form *forms.CommentForm, errs forms.Errors, status int) {
	var comments []CommentRow
	db.Model(&models.Comment{}).
		Select("comments.*, users.username AS author_name").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", post.ID).
		Order("comments.created_at ASC").
		Find(&comments)

	c.HTML(status, "blog/detail.html", gin.H{
		"user":     utils.GetUser(c),
		"post":     post,
		"comments": comments,
		"form":     form,
		"errors":   errs,
	})
}
