package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hotel-dashboard/utils"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey checks X-Admin-Key against a bcrypt hash.
// An empty hash disables the guarded routes.
func RequireAdminKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hash == "" {
			utils.JSONError(c, http.StatusForbidden, "error.adminDisabled", "admin operations are disabled")
			c.Abort()
			return
		}
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingAdminKey", "missing "+AdminKeyHeader+" header")
			c.Abort()
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidAdminKey", "invalid admin key")
			c.Abort()
			return
		}
		c.Next()
	}
}
