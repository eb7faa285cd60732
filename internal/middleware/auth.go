package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftfolio/booking-engine/internal/infra/repository"
)

const (
	ContextTenantID = "tenantID"

	SessionCookie = "session_token"
	HeaderSession = "X-Session-Token"
	HeaderCSRF    = "X-CSRF-Token"
)

// AuthMiddleware is the gate in front of every admin operation: the
// session token must resolve in the store, belong to the tenant named
// in the path, and be accompanied by the matching CSRF token.
func AuthMiddleware(sessions *repository.SessionStoreRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderSession)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session_token"})
			return
		}

		sess, err := sessions.GetSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		tenantID := c.Param("tenant")
		if tenantID == "" || sess.TenantID != tenantID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_tenant"})
			return
		}

		csrf := c.GetHeader(HeaderCSRF)
		if csrf == "" || csrf != sess.CSRFToken {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "csrf_mismatch"})
			return
		}

		c.Set(ContextTenantID, sess.TenantID)

		c.Next()
	}
}
