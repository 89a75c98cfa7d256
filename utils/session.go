package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "blogicum_session"

// SessionTTL is how long a login stays valid.
const SessionTTL = 14 * 24 * time.Hour

// SignSession mints a signed session token for the given user.
func SignSession(secret string, userID uint, username string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession validates a session token and returns its claims.
func ParseSession(secret, tokenString string) (*UserClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid session claims")
	}
	username, _ := claims["username"].(string)

	return &UserClaims{UserID: uint(userID), Username: username}, nil
}
