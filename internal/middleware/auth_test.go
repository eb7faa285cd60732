package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftfolio/booking-engine/internal/infra/repository"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/store"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *repository.SessionStoreRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := repository.NewSessionStoreRepository(store.NewMemory())

	r := gin.New()
	admin := r.Group("/api/admin/:tenant")
	admin.Use(AuthMiddleware(sessions))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant": c.MustGet(ContextTenantID)})
	})

	return r, sessions
}

func issueSession(t *testing.T, sessions *repository.SessionStoreRepository, tenantID, token, csrf string) {
	t.Helper()
	err := sessions.CreateSession(context.Background(), token, &models.Session{
		TenantID:  tenantID,
		CSRFToken: csrf,
	}, models.SessionTTL)
	require.NoError(t, err)
}

func TestAuthMissingToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_session_token")
}

func TestAuthUnknownToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	req.Header.Set(HeaderSession, "no-such-session")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_session")
}

func TestAuthWrongTenant(t *testing.T) {
	r, sessions := setupAuthRouter(t)
	issueSession(t, sessions, "acme", "tok-acme", "csrf-acme")

	// A valid session for acme must not open globex doors.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/globex/ping", nil)
	req.Header.Set(HeaderSession, "tok-acme")
	req.Header.Set(HeaderCSRF, "csrf-acme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden_tenant")
}

func TestAuthCSRFMismatch(t *testing.T) {
	r, sessions := setupAuthRouter(t)
	issueSession(t, sessions, "acme", "tok-acme", "csrf-acme")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	req.Header.Set(HeaderSession, "tok-acme")
	req.Header.Set(HeaderCSRF, "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "csrf_mismatch")

	// Missing CSRF header fails the same way.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	req.Header.Set(HeaderSession, "tok-acme")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthValidSessionPasses(t *testing.T) {
	r, sessions := setupAuthRouter(t)
	issueSession(t, sessions, "acme", "tok-acme", "csrf-acme")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	req.Header.Set(HeaderSession, "tok-acme")
	req.Header.Set(HeaderCSRF, "csrf-acme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tenant":"acme"`)
}

func TestAuthCookieFallback(t *testing.T) {
	r, sessions := setupAuthRouter(t)
	issueSession(t, sessions, "acme", "tok-cookie", "csrf-cookie")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/acme/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok-cookie"})
	req.Header.Set(HeaderCSRF, "csrf-cookie")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
