package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated requester, or nil for anonymous
// requests.
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// Owned is implemented by entities that belong to a single author.
type Owned interface {
	OwnerID() uint
}

// CanModify is the ownership guard: only the author of an entity may
// mutate it.
func CanModify(user *UserClaims, entity Owned) bool {
	return user != nil && user.UserID == entity.OwnerID()
}
