package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuthMiddleware guards the dashboard pages with one operator account
type BasicAuthMiddleware struct {
	user         string
	passwordHash []byte
}

// NewBasicAuthMiddleware creates the middleware. passwordHash is a bcrypt hash.
func NewBasicAuthMiddleware(user, passwordHash string) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{user: user, passwordHash: []byte(passwordHash)}
}

// Enabled reports whether credentials are configured
func (m *BasicAuthMiddleware) Enabled() bool {
	return m.user != "" && len(m.passwordHash) > 0
}

// BasicAuth challenges for credentials and checks them against the bcrypt hash
func (m *BasicAuthMiddleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		user, password, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) != 1 ||
			bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) != nil {
			c.Header("WWW-Authenticate", `Basic realm="Outreach Dashboard"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("auth_type", "basic")
		c.Next()
	}
}
