package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/blogicum/blogicum/utils"
)

// Session resolves the requester's identity from the session cookie.
// Anonymous and expired sessions pass through with no identity set;
// pages decide for themselves what anonymous viewers may see.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err == nil && token != "" {
			if claims, err := utils.ParseSession(secret, token); err == nil {
				c.Set(string(utils.UserContextKey), claims)
			}
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page before
// any handler logic runs, preserving the original URL in `next`.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetUser(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/auth/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
