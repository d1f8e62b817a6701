package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.7:41234"
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func limitedRouter(client *redis.Client, limit int) *gin.Engine {
	router := gin.New()
	router.Use(EnvelopeMiddleware())
	router.GET("/ping", NewRateLimiter(client, nil).Limit("test", limit, time.Minute), func(c *gin.Context) {
		respond(c, "", "pong")
	})
	return router
}

func TestRateLimiter_Limit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	router := limitedRouter(client, 2)

	for i := 0; i < 2; i++ {
		rec := serve(router, newRequest(http.MethodGet, "/ping"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	key := "rate_limit:test:192.0.2.7"
	assert.Equal(t, time.Minute, mr.TTL(key))

	rec := serve(router, newRequest(http.MethodGet, "/ping"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"status_code":429,"message":"too many requests","data":null}`, rec.Body.String())

	other := newRequest(http.MethodGet, "/ping")
	other.RemoteAddr = "198.51.100.3:5000"
	assert.Equal(t, http.StatusOK, serve(router, other).Code)

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, serve(router, newRequest(http.MethodGet, "/ping")).Code)
}

func TestRateLimiter_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	router := limitedRouter(client, 1)
	for i := 0; i < 3; i++ {
		rec := serve(router, newRequest(http.MethodGet, "/ping"))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
