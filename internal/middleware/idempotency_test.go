package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := []byte(`{"ok":true,"data":{"status":"OK"}}`)
	cacheKey := "idemp:/simulate:u-1:key-1"
	lockKey := cacheKey + ":lock"

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
		req.Header.Set(HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request is executed and cached", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST("/simulate",
			func(c *gin.Context) { c.Set(ContextUserID, "u-1"); c.Next() },
			Idempotency(db),
			func(c *gin.Context) {
				calls++
				c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			},
		)

		payload, err := json.Marshal(cachedResponse{Status: http.StatusOK, Body: body})
		assert.NoError(t, err)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, idempotencyCacheTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.JSONEq(t, string(body), w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated request is replayed", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST("/simulate",
			func(c *gin.Context) { c.Set(ContextUserID, "u-1"); c.Next() },
			Idempotency(db),
			func(c *gin.Context) { calls++ },
		)

		payload, _ := json.Marshal(cachedResponse{Status: http.StatusOK, Body: body})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := post(r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, string(body), w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/simulate",
			func(c *gin.Context) { c.Set(ContextUserID, "u-1"); c.Next() },
			Idempotency(db),
			func(c *gin.Context) { t.Fatal("handler must not run") },
		)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(false)

		w := post(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed response is not cached", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/simulate",
			func(c *gin.Context) { c.Set(ContextUserID, "u-1"); c.Next() },
			Idempotency(db),
			func(c *gin.Context) { c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false}) },
		)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("requests without key pass through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/simulate", Idempotency(db), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/simulate", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
