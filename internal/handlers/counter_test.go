package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
	"github.com/xyzhou0323/weapp-xyz-service/internal/services"
)

func setupCounterRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Counter{}))

	h := NewCounterHandler(services.NewCounterService(db))
	r := gin.New()
	r.POST("/api/count", h.Update)
	r.GET("/api/count", h.Get)
	return r
}

func postCount(t *testing.T, r *gin.Engine, action string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/count",
		strings.NewReader(`{"action":"`+action+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCounterEndpoints(t *testing.T) {
	r := setupCounterRouter(t)

	w := postCount(t, r, "inc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"data":1}`, w.Body.String())

	w = postCount(t, r, "inc")
	assert.JSONEq(t, `{"code":0,"data":2}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/count", nil))
	assert.JSONEq(t, `{"code":0,"data":2}`, w.Body.String())

	w = postCount(t, r, "clear")
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/count", nil))
	assert.JSONEq(t, `{"code":0,"data":0}`, w.Body.String())
}
