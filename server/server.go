package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lotworks/lotview/internal/logger"
)

// Server serves the static vehicle catalog. Filtering, sorting and
// pagination are deliberately absent: the client owns all of that.
type Server struct {
	dataset *Dataset
	echo    *echo.Echo
}

// New creates a catalog server for the dataset at the given path
func New(datasetPath string) (*Server, error) {
	ds, err := LoadDataset(datasetPath)
	if err != nil {
		return nil, err
	}

	s := &Server{dataset: ds}
	s.setupEcho()
	return s, nil
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP Request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/health", s.handleHealth)

	api := e.Group("/api/v1")
	api.GET("/vehicles", s.handleVehicles)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"vehicles": s.dataset.Count(),
	})
}

// handleVehicles returns the whole catalog as one JSON array
func (s *Server) handleVehicles(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, s.dataset.Raw())
}
