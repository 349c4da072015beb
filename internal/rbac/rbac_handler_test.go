package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-apg/internal/domain"
	"go-apg/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct{}

func (m *mockService) LoadPolicy() error { return nil }

func (m *mockService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Role == domain.RoleUser && req.Resource == "margin" && req.Action == "simulate", nil
}

func (m *mockService) ListRoles() ([]domain.RoleResponse, error) {
	return []domain.RoleResponse{{Name: "User"}}, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&mockService{})
	router := gin.New()
	router.POST("/rbac/enforce", func(c *gin.Context) {
		c.Set(middleware.ContextRole, domain.RoleUser)
		c.Next()
	}, handler.Enforce)

	do := func(body any) *httptest.ResponseRecorder {
		jsonBody, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		w := do(map[string]string{"resource": "margin", "action": "simulate"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"allowed":true}}`, w.Body.String())
	})

	t.Run("denied", func(t *testing.T) {
		w := do(map[string]string{"resource": "salary_settings", "action": "delete"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"allowed":false}}`, w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		w := do(map[string]string{"resource": "margin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
