// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/pipeline"
)

// Server wraps the gin engine around an analyzer
type Server struct {
	engine   *gin.Engine
	analyzer *pipeline.Analyzer
	addr     string
}

// New creates a new server for the given analyzer
func New(cfg *model.Config, analyzer *pipeline.Analyzer) *Server {
	gin.SetMode(gin.ReleaseMode)

	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		engine:   g,
		analyzer: analyzer,
		addr:     cfg.Server.Addr,
	}
	s.attachRoutes()

	return s
}

func (s *Server) attachRoutes() {
	s.engine.GET("/healthz", s.health)

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/analyze/text", s.analyzeText)
		v1.POST("/analyze/url", s.analyzeURL)
	}
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	slog.Info("http server listening", "addr", s.addr)
	return s.engine.Run(s.addr)
}

// Handler exposes the engine for tests and custom servers
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) analyzeText(c *gin.Context) {
	var req struct {
		Text      string `json:"text"`
		SourceURL string `json:"source_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"err": "text is required"})
		return
	}

	start := time.Now()
	result := s.analyzer.AnalyzeText(c.Request.Context(), model.AnalysisInput{
		Text:      req.Text,
		SourceURL: req.SourceURL,
	})
	slog.Info("analyzed text", "score", result.Score, "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}

func (s *Server) analyzeURL(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"err": "url is required"})
		return
	}

	// URL analyses can block on the fetch; bound them independently of the
	// client connection
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	start := time.Now()
	result := s.analyzer.AnalyzeURL(ctx, req.URL)
	slog.Info("analyzed url", "url", req.URL, "score", result.Score,
		"degraded", result.Degraded, "duration", time.Since(start))

	c.JSON(http.StatusOK, result)
}
