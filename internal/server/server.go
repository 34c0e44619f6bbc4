// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the survey pipeline over HTTP: a health check and
// one generate endpoint behind the stable /LS/content/v1 prefix.
package server

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/survey"
)

// APIPrefix is the stable route prefix for the platform API.
const APIPrefix = "/LS/content/v1"

// localOrigin matches the dev frontend on any localhost port, so a Vite
// port hop never breaks CORS.
var localOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

// Runner is the orchestration contract the server depends on.
type Runner interface {
	Run(ctx context.Context, req survey.Request) (*survey.Response, error)
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	runner Runner
	log    *zap.Logger
}

// New returns a server around the given pipeline runner.
func New(runner Runner, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{runner: runner, log: log}
}

// Router builds the gin engine with recovery, request logging, and CORS.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return localOrigin.MatchString(origin) },
	}))

	router.GET("/", s.health)

	api := router.Group(APIPrefix)
	api.POST("/generate", s.generate)

	return router
}

// health reports liveness.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Literature Surveyor API is online"})
}

// generate runs the survey pipeline for one question. Invalid input is a
// 400; a pipeline error (empty final answer) is a 500 with a detail field.
func (s *Server) generate(c *gin.Context) {
	var req survey.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "question must not be empty"})
		return
	}

	resp, err := s.runner.Run(c.Request.Context(), req)
	if err != nil {
		s.log.Error("survey pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generating content: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
