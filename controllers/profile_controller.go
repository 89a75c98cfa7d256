package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/forms"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewProfileController(db *gorm.DB, cfg config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

// Profile lists the named user's posts, newest first. Drafts and
// scheduled posts are listed here too; the profile is the one place an
// author sees their whole catalogue.
func (pc *ProfileController) Profile(c *gin.Context) {
	var profile models.User
	if err := pc.DB.Where("username = ?", c.Param("username")).
		First(&profile).Error; err != nil {
		renderNotFound(c)
		return
	}

	page := parsePage(c)

	var total int64
	if err := pc.DB.Model(&models.Post{}).
		Where("posts.author_id = ?", profile.ID).Count(&total).Error; err != nil {
		renderServerError(c)
		return
	}

	posts, err := listPosts(
		pc.DB.Model(&models.Post{}).
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.author_id = ?", profile.ID), page)
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "blog/profile.html", gin.H{
		"user":    utils.GetUser(c),
		"profile": profile,
		"posts":   posts,
		"page":    paginate(page, total),
	})
}

// EditProfilePage renders the profile form prefilled with the
// requester's own fields.
func (pc *ProfileController) EditProfilePage(c *gin.Context) {
	user := utils.GetUser(c)

	var account models.User
	if err := pc.DB.First(&account, user.UserID).Error; err != nil {
		renderNotFound(c)
		return
	}

	form := &forms.UserForm{
		Username:  account.Username,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}
	pc.renderProfileForm(c, form, nil)
}

// EditProfile updates the requester's own profile and redirects to it.
func (pc *ProfileController) EditProfile(c *gin.Context) {
	user := utils.GetUser(c)

	var account models.User
	if err := pc.DB.First(&account, user.UserID).Error; err != nil {
		renderNotFound(c)
		return
	}

	form := &forms.UserForm{
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
	}
	if errs := form.Validate(); errs != nil {
		pc.renderProfileForm(c, form, errs)
		return
	}

	if field := pc.takenBy(form, account.ID); field != "" {
		pc.renderProfileForm(c, form, forms.Errors{field: field + " already taken"})
		return
	}

	form.Apply(&account)
	if err := pc.DB.Model(&account).Updates(map[string]interface{}{
		"username":   account.Username,
		"email":      account.Email,
		"first_name": account.FirstName,
		"last_name":  account.LastName,
	}).Error; err != nil {
		pc.renderProfileForm(c, form, forms.Errors{"__all__": "could not update profile"})
		return
	}

	// A renamed account needs a fresh session, the old claims carry the
	// stale username.
	if account.Username != user.Username {
		if token, err := utils.SignSession(pc.Cfg.SecretKey, account.ID, account.Username, utils.SessionTTL); err == nil {
			c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
		}
	}

	c.Redirect(http.StatusFound, "/profile/"+account.Username)
}

// takenBy reports which unique field, if any, another account already
// holds; empty when both are free.
func (pc *ProfileController) takenBy(form *forms.UserForm, selfID uint) string {
	var count int64
	pc.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", form.Username, selfID).Count(&count)
	if count > 0 {
		return "username"
	}
	pc.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", form.Email, selfID).Count(&count)
	if count > 0 {
		return "email"
	}
	return ""
}

func (pc *ProfileController) renderProfileForm(c *gin.Context, form *forms.UserForm, errs forms.Errors) {
	c.HTML(http.StatusOK, "blog/user.html", gin.H{
		"user":   utils.GetUser(c),
		"form":   form,
		"errors": errs,
	})
}
