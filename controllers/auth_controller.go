package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/forms"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewAuthController(db *gorm.DB, cfg config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// RegisterPage renders the registration form.
func (ac *AuthController) RegisterPage(c *gin.Context) {
	ac.renderRegister(c, &forms.RegistrationForm{}, nil)
}

// Register creates an account and redirects to the index.
func (ac *AuthController) Register(c *gin.Context) {
	form := &forms.RegistrationForm{
		Username:  strings.TrimSpace(c.PostForm("username")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Password1: c.PostForm("password1"),
		Password2: c.PostForm("password2"),
	}
	if errs := form.Validate(); errs != nil {
		ac.renderRegister(c, form, errs)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password1), bcrypt.DefaultCost)
	if err != nil {
		renderServerError(c)
		return
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hashed),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		ac.renderRegister(c, form, forms.Errors{"username": "username or email already exists"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	ac.renderLogin(c, &forms.LoginForm{}, nil)
}

// Login checks credentials and starts a session.
func (ac *AuthController) Login(c *gin.Context) {
	form := &forms.LoginForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
	}
	if errs := form.Validate(); errs != nil {
		ac.renderLogin(c, form, errs)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		ac.renderLogin(c, form, forms.Errors{"__all__": "invalid username or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		ac.renderLogin(c, form, forms.Errors{"__all__": "invalid username or password"})
		return
	}

	token, err := utils.SignSession(ac.Cfg.SecretKey, user.ID, user.Username, utils.SessionTTL)
	if err != nil {
		renderServerError(c)
		return
	}
	c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)

	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func (ac *AuthController) renderRegister(c *gin.Context, form *forms.RegistrationForm, errs forms.Errors) {
	c.HTML(http.StatusOK, "registration/registration_form.html", gin.H{
		"user":   utils.GetUser(c),
		"form":   form,
		"errors": errs,
	})
}

func (ac *AuthController) renderLogin(c *gin.Context, form *forms.LoginForm, errs forms.Errors) {
	c.HTML(http.StatusOK, "registration/login.html", gin.H{
		"user":   utils.GetUser(c),
		"form":   form,
		"errors": errs,
		"next":   safeNext(c.Query("next")),
	})
}
