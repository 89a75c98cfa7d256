package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogicum/blogicum/models"
	"github.com/blogicum/blogicum/utils"
)

func sessionCookie(w http.Header) *http.Cookie {
	for _, raw := range w.Values("Set-Cookie") {
		header := http.Header{"Set-Cookie": {raw}}
		resp := http.Response{Header: header}
		for _, ck := range resp.Cookies() {
			if ck.Name == utils.SessionCookie {
				return ck
			}
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	r, db, _ := newTestRouter(t)

	w := doPost(r, "/auth/registration", url.Values{
		"username":  {"carol"},
		"email":     {"carol@example.com"},
		"password1": {testPassword},
		"password2": {testPassword},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, db.Where("username = ?", "carol").First(&user).Error)
	assert.Equal(t, "carol@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(testPassword)))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, db, _ := newTestRouter(t)

	w := doPost(r, "/auth/registration", url.Values{
		"username":  {"carol"},
		"email":     {"carol@example.com"},
		"password1": {testPassword},
		"password2": {"something-else"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, db, _ := newTestRouter(t)
	createUser(t, db, "carol")

	w := doPost(r, "/auth/registration", url.Values{
		"username":  {"carol"},
		"email":     {"other@example.com"},
		"password1": {testPassword},
		"password2": {testPassword},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	r, db, _ := newTestRouter(t)
	createUser(t, db, "alice")

	w := doPost(r, "/auth/login", url.Values{
		"username": {"alice"},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := sessionCookie(w.Header())
	require.NotNil(t, ck)
	assert.NotEmpty(t, ck.Value)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db, _ := newTestRouter(t)
	createUser(t, db, "alice")

	w := doPost(r, "/auth/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
	assert.Nil(t, sessionCookie(w.Header()))
}

func TestLoginUnknownUser(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doPost(r, "/auth/login", url.Values{
		"username": {"nobody"},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestLoginNextRedirect(t *testing.T) {
	r, db, _ := newTestRouter(t)
	createUser(t, db, "alice")

	creds := url.Values{"username": {"alice"}, "password": {testPassword}}

	w := doPost(r, "/auth/login?next=%2Fposts%2Fcreate", creds)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/create", w.Header().Get("Location"))

	// Off-site targets fall back to the index.
	w = doPost(r, "/auth/login?next=//evil.example", creds)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = doPost(r, "/auth/login?next=https%3A%2F%2Fevil.example", creds)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogout(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	user := createUser(t, db, "alice")

	w := doPost(r, "/auth/logout", nil, sessionFor(t, cfg, user))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := sessionCookie(w.Header())
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}
