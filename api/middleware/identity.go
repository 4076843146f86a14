package middleware

import (
	"net/http"

	"storefront/api/response"

	"github.com/gin-gonic/gin"
)

// The engine trusts an upstream gateway to authenticate callers and
// forward identity in headers. Authentication itself is out of scope
// here; these helpers only read what the gateway asserted.
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	RoleAdmin = "admin"
)

// IdentityMiddleware copies the forwarded identity headers into the gin
// context for handlers to read.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, c.GetHeader(UserIDHeader))
		c.Set(UserRoleKey, c.GetHeader(UserRoleHeader))
		c.Next()
	}
}

// UserID returns the caller's user id, empty when anonymous.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// UserRole returns the caller's role, empty when none was forwarded.
func UserRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

// RequireUser aborts with 403 when no user identity was forwarded.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Response{
				Success:   false,
				Error:     "FORBIDDEN",
				Message:   "user identity is required",
				Code:      http.StatusForbidden,
				RequestID: response.GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller holds the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRole(c) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Response{
				Success:   false,
				Error:     "FORBIDDEN",
				Message:   "admin role is required",
				Code:      http.StatusForbidden,
				RequestID: response.GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
