package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterRejectsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(rate.Limit(1), 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCacheServesSecondHitFromStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.New(time.Minute, time.Minute)

	calls := 0
	r := gin.New()
	r.GET("/data", Cache(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/data", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"calls":1}`, w.Body.String())
	}
	assert.Equal(t, 1, calls)
}

func TestCacheSkipsNonGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.New(time.Minute, time.Minute)

	calls := 0
	r := gin.New()
	r.POST("/data", Cache(store, time.Minute), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/data", nil)
		r.ServeHTTP(w, req)
	}
	assert.Equal(t, 2, calls)
}
