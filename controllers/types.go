package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/models"
)

// NumPostsOnPage is the page size for every post listing.
const NumPostsOnPage = 10

// PostRow is a post annotated with the columns listings render:
// author username, category/location names and the comment count.
type PostRow struct {
	models.Post
	AuthorName    string `json:"author_name"`
	CategoryTitle string `json:"category_title"`
	CategorySlug  string `json:"category_slug"`
	LocationName  string `json:"location_name"`
	CommentCount  int64  `json:"comment_count"`
}

// CommentRow is a comment annotated with its author's username.
type CommentRow struct {
	models.Comment
	AuthorName string `json:"author_name"`
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

func paginate(page int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(NumPostsOnPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
