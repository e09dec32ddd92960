package server

import (
	"github.com/gofiber/fiber/v3/middleware/static"
)

func (s *Server) setupRoutes(staticDir string) {
	s.app.Get("/health", s.healthCheckHandler)

	// Dashboard API endpoint
	s.app.Get("/api/nps-dashboard", s.npsDashboardHandler)

	// Dashboard frontend assets
	s.app.Use("/", static.New(staticDir))
}
