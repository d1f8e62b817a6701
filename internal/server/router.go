package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/config"
)

// NewRouter wires the API routes. limiter may be nil to disable rate limiting.
func NewRouter(cfg config.ServerConfig, h *Handler, limiter *RateLimiter, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "Accept"},
			MaxAge:       time.Hour,
		}))
	}
	router.Use(EnvelopeMiddleware())

	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	if limiter != nil && cfg.RateLimit.Requests > 0 {
		api.Use(limiter.Limit("api", cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second))
	}
	{
		api.GET("/grades", h.ListGrades)
		api.GET("/subjects", h.ListSubjects)

		api.POST("/lessons", h.ListLessons)
		api.GET("/grades/:grade_id/lessons", h.ListLessons)

		api.POST("/chapters", h.ListChapters)
		api.GET("/lessons/:lesson_id/chapters", h.ListChapters)

		api.POST("/parts", h.ListParts)
		api.GET("/chapters/:chapter_id/parts", h.ListParts)
		api.GET("/parts/:id", h.GetPart)
	}

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
