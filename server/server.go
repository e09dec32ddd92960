package server

import (
	"github.com/NextMind-AI/nps-dashboard-go/nps"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app     *fiber.App
	service *nps.Service
}

func New(service *nps.Service, allowOrigins []string, staticDir string) *Server {
	app := fiber.New()

	server := &Server{
		app:     app,
		service: service,
	}

	server.setupMiddleware(allowOrigins)
	server.setupRoutes(staticDir)

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting NPS dashboard server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
