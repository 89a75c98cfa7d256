package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogicum/blogicum/models"
)

func TestAddCommentAnonymousRedirectsToLogin(t *testing.T) {
	r, db, _ := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "commented", postOpts{published: true})

	w := doPost(r, fmt.Sprintf("/posts/%d/comment", post.ID),
		url.Values{"text": {"hello"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login")

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddComment(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	commenter := createUser(t, db, "bob")
	post := createPost(t, db, author, "commented", postOpts{published: true})

	w := doPost(r, fmt.Sprintf("/posts/%d/comment", post.ID),
		url.Values{"text": {"nice post"}}, sessionFor(t, cfg, commenter))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, db.Where("post_id = ?", post.ID).First(&comment).Error)
	assert.Equal(t, commenter.ID, comment.AuthorID)
	assert.Equal(t, "nice post", comment.Text)
}

func TestAddCommentMissingPost(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	commenter := createUser(t, db, "bob")

	w := doPost(r, "/posts/999/comment",
		url.Values{"text": {"hello"}}, sessionFor(t, cfg, commenter))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCommentEmptyTextRerendersDetail(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "commented", postOpts{published: true})

	w := doPost(r, fmt.Sprintf("/posts/%d/comment", post.ID),
		url.Values{"text": {""}}, sessionFor(t, cfg, author))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be blank")

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	r, db, _ := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "discussion", postOpts{published: true})

	now := time.Now().UTC()
	createComment(t, db, post, author, "comment-middle", now.Add(-time.Hour))
	createComment(t, db, post, author, "comment-newest", now)
	createComment(t, db, post, author, "comment-oldest", now.Add(-2*time.Hour))

	w := doGet(r, fmt.Sprintf("/posts/%d", post.ID))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	oldest := strings.Index(body, "comment-oldest")
	middle := strings.Index(body, "comment-middle")
	newest := strings.Index(body, "comment-newest")
	require.NotEqual(t, -1, oldest)
	require.NotEqual(t, -1, middle)
	require.NotEqual(t, -1, newest)
	assert.Less(t, oldest, middle)
	assert.Less(t, middle, newest)
}

func TestEditCommentByNonAuthorForbidden(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	post := createPost(t, db, author, "commented", postOpts{published: true})
	comment := createComment(t, db, post, author, "original", time.Now().UTC())

	w := doPost(r, fmt.Sprintf("/posts/%d/edit_comment/%d", post.ID, comment.ID),
		url.Values{"text": {"hijacked"}}, sessionFor(t, cfg, other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, comment.ID).Error)
	assert.Equal(t, "original", reloaded.Text)
}

func TestEditComment(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "commented", postOpts{published: true})
	comment := createComment(t, db, post, author, "before", time.Now().UTC())

	w := doPost(r, fmt.Sprintf("/posts/%d/edit_comment/%d", post.ID, comment.ID),
		url.Values{"text": {"after"}}, sessionFor(t, cfg, author))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/posts/%d", post.ID), w.Header().Get("Location"))

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, comment.ID).Error)
	assert.Equal(t, "after", reloaded.Text)
}

func TestDeleteCommentByNonAuthorForbidden(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	post := createPost(t, db, author, "commented", postOpts{published: true})
	comment := createComment(t, db, post, author, "keep-me", time.Now().UTC())

	w := doPost(r, fmt.Sprintf("/posts/%d/delete_comment/%d", post.ID, comment.ID),
		nil, sessionFor(t, cfg, other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteComment(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "commented", postOpts{published: true})
	comment := createComment(t, db, post, author, "bye", time.Now().UTC())

	w := doPost(r, fmt.Sprintf("/posts/%d/delete_comment/%d", post.ID, comment.ID),
		nil, sessionFor(t, cfg, author))
	require.Equal(t, http.StatusFound, w.Code)

	var count int64
	db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Zero(t, count)
}

func TestCommentScopedToPost(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	author := createUser(t, db, "alice")
	post := createPost(t, db, author, "first", postOpts{published: true})
	otherPost := createPost(t, db, author, "second", postOpts{published: true})
	comment := createComment(t, db, post, author, "scoped", time.Now().UTC())

	// Addressing the comment under the wrong post is a 404.
	w := doPost(r, fmt.Sprintf("/posts/%d/edit_comment/%d", otherPost.ID, comment.ID),
		url.Values{"text": {"nope"}}, sessionFor(t, cfg, author))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
