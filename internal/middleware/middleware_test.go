package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-apg/internal/domain"
	"go-apg/internal/middleware"
	"go-apg/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		p := middleware.CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  p.UserID,
			"role":     p.Role,
			"bu_ids":   p.BusinessUnitIDs,
			"ctx_user": contextutil.GetUserID(c.Request.Context()),
		})
	})

	doRequest := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":           "u-1",
			"role":              domain.RoleManager,
			"business_unit_ids": []any{1, 3},
			"exp":               time.Now().Add(time.Hour).Unix(),
		})

		w := doRequest(token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","role":"Manager","bu_ids":[1,3],"ctx_user":"u-1"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := doRequest("")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "u-1",
			"role":    domain.RoleUser,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w := doRequest(token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "u-1",
			"role":    domain.RoleUser,
		}).SignedString([]byte("other"))

		w := doRequest(token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("missing role", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1"})

		w := doRequest(token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Role not found in token")
	})
}

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		r := setupRouter()
		r.POST("/x", withRole(domain.RoleUser), middleware.RBACAuthorize(svc, "margin", "simulate"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: "User", Resource: "margin", Action: "simulate"}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		r := setupRouter()
		r.POST("/x", withRole(domain.RoleUser), middleware.RBACAuthorize(&fakeRBAC{}, "salary_settings", "update"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "salary_settings:update")
	})

	t.Run("missing role", func(t *testing.T) {
		r := setupRouter()
		r.POST("/x", middleware.RBACAuthorize(&fakeRBAC{allowed: true}, "margin", "simulate"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := setupRouter()
		r.POST("/x", withRole(domain.RoleUser), middleware.RBACAuthorize(&fakeRBAC{err: errors.New("boom")}, "margin", "simulate"), ok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.GET("/x",
		func(c *gin.Context) { c.Set(middleware.ContextUserID, c.GetHeader("X-User")); c.Next() },
		middleware.RateLimitByUser(0.001, 1),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusOK, call("bob"))
	// Anonymous callers are not limited here.
	assert.Equal(t, http.StatusOK, call(""))
	assert.Equal(t, http.StatusOK, call(""))
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.HeaderRequestID, "rid-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-123", w.Body.String())
		assert.Equal(t, "rid-123", w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.HeaderRequestID))
	})
}

func TestRoleMiddleware(t *testing.T) {
	r := setupRouter()
	r.GET("/x", withRole(domain.RoleManager), middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCFO),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
