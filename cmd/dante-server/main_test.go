package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	Data       []json.RawMessage `json:"data"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      8000,
			RateLimit: config.RateLimitConfig{Requests: 2, WindowSeconds: 60},
		},
		Redis: config.RedisConfig{CacheTTLSeconds: 60},
	}
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	if rec.Code == http.StatusOK && path != "/healthz" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestNewHTTPServer(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	_, _, err := curriculum.NewDBStore(db).GetOrCreateGrade(context.Background(), "10", curriculum.GradeDefaults{Name: "Grade 10"})
	require.NoError(t, err)

	srv := newHTTPServer(testConfig(), db, nil, nil)
	assert.Equal(t, ":8000", srv.Addr)

	rec, _ := get(t, srv.Handler, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	for i := 0; i < 3; i++ {
		rec, env := get(t, srv.Handler, "/api/grades")
		require.Equal(t, http.StatusOK, rec.Code, "without redis there is no rate limit")
		assert.Equal(t, "grade find success", env.Message)
		assert.Len(t, env.Data, 1)
	}
}

func TestNewHTTPServer_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	db := testutil.NewSQLiteDB(t)

	srv := newHTTPServer(testConfig(), db, client, nil)

	rec, env := get(t, srv.Handler, "/api/grades")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.Data)
	assert.True(t, mr.Exists("catalog:grades"))

	rec, _ = get(t, srv.Handler, "/api/grades")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = get(t, srv.Handler, "/api/grades")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRun_ConfigError(t *testing.T) {
	err := run(context.Background(), setupBrokenConfig(t))
	assert.ErrorContains(t, err, "load config")
}
