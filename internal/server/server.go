// Package server exposes a loaded transaction store as a small JSON API.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/skinledger/skinledger/internal/config"
)

// RequestIDHeader carries the per-request id set by the router.
const RequestIDHeader = "X-Request-ID"

// NewRouter wires the /v1 routes onto a gin engine.
func NewRouter(h *Handler, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(logger), gin.Recovery())

	api := router.Group("/v1/")
	{
		api.GET("/status", h.GetStatus)
		api.POST("/load", h.PostLoad)
		api.GET("/daily", h.GetDaily)
		api.GET("/countries", h.GetCountries)
		api.GET("/search", h.GetSearch)
	}
	return router
}

// New builds the handler and router for a store using cfg's report defaults.
func New(s Store, cfg *config.Config, logger logrus.FieldLogger) *gin.Engine {
	return NewRouter(NewHandler(s, cfg.Report), logger)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).Round(time.Microsecond),
			"request_id": c.GetString("request_id"),
		}).Info("HTTP request")
	}
}
