// Package session stores the admin bearer token in the cookie session. The
// token itself is stateless; the cookie max-age is its only lifetime bound.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const adminToken = "ADMIN_TOKEN"

// SetAdminToken saves the minted token into the session with the given
// max-age in seconds.
func SetAdminToken(c *gin.Context, token string, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	s.Set(adminToken, token)
	return s.Save()
}

// GetAdminToken returns the stored token or an empty string.
func GetAdminToken(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(adminToken); obj != nil {
		if token, ok := obj.(string); ok {
			return token
		}
	}
	return ""
}

// ClearSession drops the session and expires the cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
