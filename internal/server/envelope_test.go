package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnvelopeMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		path        string
		wantStatus  int
		wantMessage string
		wantData    string
	}{
		{
			name:        "default success message",
			handler:     func(c *gin.Context) { respond(c, "", []int{1, 2}) },
			path:        "/ping",
			wantStatus:  http.StatusOK,
			wantMessage: "OK",
			wantData:    `[1,2]`,
		},
		{
			name:        "custom success message",
			handler:     func(c *gin.Context) { respond(c, "done", gin.H{"n": 1}) },
			path:        "/ping",
			wantStatus:  http.StatusOK,
			wantMessage: "done",
			wantData:    `{"n":1}`,
		},
		{
			name:        "error detail",
			handler:     func(c *gin.Context) { fail(c, http.StatusConflict, "already exists") },
			path:        "/ping",
			wantStatus:  http.StatusConflict,
			wantMessage: "already exists",
			wantData:    `null`,
		},
		{
			name:        "error without detail uses the status text",
			handler:     func(c *gin.Context) { fail(c, http.StatusServiceUnavailable, "") },
			path:        "/ping",
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "Service Unavailable",
			wantData:    `null`,
		},
		{
			name:        "unknown route",
			handler:     func(c *gin.Context) { respond(c, "", nil) },
			path:        "/missing",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
			wantData:    `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(EnvelopeMiddleware())
			router.GET("/ping", tt.handler)

			rec, env := do(t, router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.JSONEq(t, tt.wantData, string(env.Data))
		})
	}
}

func TestEnvelopeMiddleware_HandlerWroteBody(t *testing.T) {
	router := gin.New()
	router.Use(EnvelopeMiddleware())
	router.GET("/raw", func(c *gin.Context) { c.String(http.StatusTeapot, "short and stout") })

	req := newRequest(http.MethodGet, "/raw")
	rec := serve(router, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
