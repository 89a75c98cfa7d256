package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/forms"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// AddComment attaches a comment to an existing post and redirects back
// to the post's detail page.
func (cc *CommentController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return
	}

	var post models.Post
	if err := cc.DB.Preload("Category").Preload("Location").Preload("Author").
		First(&post, id).Error; err != nil {
		renderNotFound(c)
		return
	}

	form := &forms.CommentForm{Text: c.PostForm("text")}
	if errs := form.Validate(); errs != nil {
		renderPostDetail(c, cc.DB, &post, form, errs, http.StatusOK)
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.UserID,
	}
	form.Apply(&comment)

	if err := cc.DB.Create(&comment).Error; err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// EditCommentPage renders the comment form prefilled.
func (cc *CommentController) EditCommentPage(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}
	cc.renderCommentForm(c, comment, &forms.CommentForm{Text: comment.Text}, nil, false)
}

// EditComment updates the comment text and redirects to the post.
func (cc *CommentController) EditComment(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}

	form := &forms.CommentForm{Text: c.PostForm("text")}
	if errs := form.Validate(); errs != nil {
		cc.renderCommentForm(c, comment, form, errs, false)
		return
	}

	if err := cc.DB.Model(comment).Update("text", form.Text).Error; err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", comment.PostID))
}

// DeleteCommentPage renders the delete confirmation.
func (cc *CommentController) DeleteCommentPage(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}
	cc.renderCommentForm(c, comment, nil, nil, true)
}

// DeleteComment removes the comment and redirects to the post.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	comment, ok := cc.ownedComment(c)
	if !ok {
		return
	}

	if err := cc.DB.Delete(comment).Error; err != nil {
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", comment.PostID))
}

// ownedComment loads the comment addressed by the URL, scoped to its
// post. The URL already names the comment, so foreign comments get 403
// rather than a hiding 404.
func (cc *CommentController) ownedComment(c *gin.Context) (*models.Comment, bool) {
	postID, err1 := strconv.Atoi(c.Param("id"))
	commentID, err2 := strconv.Atoi(c.Param("comment_id"))
	if err1 != nil || err2 != nil {
		renderNotFound(c)
		return nil, false
	}

	var comment models.Comment
	if err := cc.DB.Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error; err != nil {
		renderNotFound(c)
		return nil, false
	}

	if !utils.CanModify(utils.GetUser(c), &comment) {
		renderForbidden(c)
		return nil, false
	}

	return &comment, true
}

func (cc *CommentController) renderCommentForm(c *gin.Context, comment *models.Comment, form *forms.CommentForm, errs forms.Errors, confirmDelete bool) {
	c.HTML(http.StatusOK, "blog/comment.html", gin.H{
		"user":           utils.GetUser(c),
		"comment":        comment,
		"form":           form,
		"errors":         errs,
		"confirm_delete": confirmDelete,
	})
}
