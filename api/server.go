// Package api serves the simulator over HTTP.
package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	CacheSize int
}

// Server is the simulation HTTP service.
type Server struct {
	app   *fiber.App
	cache *resultCache
}

// NewServer builds the fiber app with every route registered.
func NewServer(cfg ServerConfig) *Server {
	s := &Server{cache: newResultCache(cfg.CacheSize)}
	s.app = fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(requestLogger)

	v1 := s.app.Group("/api").Group("/v1")
	{
		v1.Get("/policies", s.listPolicies)
		v1.Post("/simulate/:policy", s.simulate)
		v1.Post("/compare", s.compare)
	}
	return s
}

// App exposes the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	logrus.Infof("schedsim API listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logrus.WithFields(logrus.Fields{
		"method":  c.Method(),
		"path":    c.Path(),
		"status":  c.Response().StatusCode(),
		"latency": time.Since(start),
	}).Debug("request served")
	return err
}
