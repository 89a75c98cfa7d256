package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/routes"
	"github.com/blogicum/blogicum/utils"
)

// testPassword backs every account the tests create.
const testPassword = "correct-horse"

// newTestRouter spins up the real router over an in-memory sqlite
// database, one per test.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	cfg := config.Config{SecretKey: "test-secret", MediaRoot: t.TempDir()}
	r := routes.NewRouter(db, cfg, "../templates/*/*.html")
	return r, db, cfg
}

func doGet(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionFor(t *testing.T, cfg config.Config, user *models.User) *http.Cookie {
	t.Helper()
	token, err := utils.SignSession(cfg.SecretKey, user.ID, user.Username, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookie, Value: token}
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, title, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:     title,
		Slug:      slug,
		Published: models.Published{IsPublished: published},
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

type postOpts struct {
	pubDate   time.Time
	published bool
	category  *models.Category
	location  *models.Location
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, title string, opts postOpts) *models.Post {
	t.Helper()
	if opts.pubDate.IsZero() {
		opts.pubDate = time.Now().UTC().Add(-time.Hour)
	}
	post := &models.Post{
		Title:     title,
		Text:      "text of " + title,
		PubDate:   opts.pubDate,
		AuthorID:  author.ID,
		Published: models.Published{IsPublished: opts.published},
	}
	if opts.category != nil {
		post.CategoryID = &opts.category.ID
	}
	if opts.location != nil {
		post.LocationID = &opts.location.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, post *models.Post, author *models.User, text string, createdAt time.Time) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Text:        text,
		PostID:      post.ID,
		AuthorID:    author.ID,
		WithCreated: models.WithCreated{CreatedAt: createdAt},
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
