package client_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-apg/internal/client"
	clienterrors "go-apg/internal/client/errors"
	clientMock "go-apg/internal/client/mock"
	"go-apg/internal/domain"
	"go-apg/internal/middleware"
	"go-apg/internal/shared/apperror"
	"go-apg/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func withPrincipal(role string, units ...int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Set(middleware.ContextRole, role)
		c.Set(middleware.ContextBusinessUnitIDs, units)
		c.Next()
	}
}

func setupHandler(t *testing.T, role string, units ...int64) (*gin.Engine, *clientMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := clientMock.NewMockService(gomock.NewController(t))
	h := client.NewHandler(svc)

	r := gin.New()
	r.Use(withPrincipal(role, units...))
	r.GET("/clients", h.GetAll)
	r.GET("/clients/:id", h.GetByID)
	r.POST("/clients", h.Create)
	r.PUT("/clients/:id/financial-config", h.UpdateFinancialConfig)
	r.DELETE("/clients/:id", h.Delete)
	return r, svc
}

func TestClientHandler_GetAll_PassesCallerScope(t *testing.T) {
	r, svc := setupHandler(t, domain.RoleManager, 10, 11)
	svc.EXPECT().
		GetAll(gomock.Any(), tenant.Access{Role: domain.RoleManager, BusinessUnitIDs: []int64{10, 11}}).
		Return([]client.ClientResponse{{ID: 1, Code: "ACME"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mustDecodeEnvelope(t, w.Body.Bytes()).Ok)
}

func TestClientHandler_GetByID(t *testing.T) {
	t.Run("forbidden business unit", func(t *testing.T) {
		r, svc := setupHandler(t, domain.RoleUser, 10)
		svc.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(5)).Return(client.ClientResponse{}, clienterrors.ErrBusinessUnitAccess)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/5", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, apperror.CodeForbidden, env.Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		r, _ := setupHandler(t, domain.RoleAdmin)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/x", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		r, _ := setupHandler(t, domain.RoleAdmin)
		body := `{"code":"AC","name":"Acme","businessUnitId":1,"sectorId":1,"countryId":1,"currencyId":1,"contactName":"Jane","contactEmail":"nope"}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, mustDecodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		r, svc := setupHandler(t, domain.RoleAdmin)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(client.ClientResponse{}, clienterrors.ErrClientCodeExists)
		body := `{"code":"AC","name":"Acme","businessUnitId":1,"sectorId":1,"countryId":1,"currencyId":1,"contactName":"Jane","contactEmail":"jane@acme.com"}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestClientHandler_UpdateFinancialConfig(t *testing.T) {
	t.Run("discount out of range", func(t *testing.T) {
		r, _ := setupHandler(t, domain.RoleCFO)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/clients/1/financial-config", strings.NewReader(`{"discountPercent":101}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, svc := setupHandler(t, domain.RoleCFO)
		svc.EXPECT().
			UpdateFinancialConfig(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ tenant.Access, _ int64, req client.FinancialConfigRequest) (client.ClientResponse, error) {
				assert.Equal(t, 35.0, *req.TargetMarginPercent)
				assert.Nil(t, req.DiscountPercent)
				return client.ClientResponse{ID: 1}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/clients/1/financial-config", strings.NewReader(`{"targetMarginPercent":35,"discountPercent":null}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestClientHandler_Delete(t *testing.T) {
	r, svc := setupHandler(t, domain.RoleAdmin)
	svc.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(8)).Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/clients/8", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
