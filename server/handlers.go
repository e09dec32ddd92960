package server

import (
	"errors"
	"strconv"

	"github.com/NextMind-AI/nps-dashboard-go/crm"
	"github.com/NextMind-AI/nps-dashboard-go/nps"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// npsDashboardHandler handles GET /api/nps-dashboard
func (s *Server) npsDashboardHandler(c fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	// Invalid or missing page values default to 1.
	page := 1
	if pageParam := c.Query("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}

	log.Info().
		Str("start_date", startDate).
		Str("end_date", endDate).
		Int("page", page).
		Msg("Received NPS dashboard request")

	dashboard, err := s.service.GenerateDashboard(c.Context(), startDate, endDate, page)
	if err != nil {
		return s.dashboardErrorResponse(c, err)
	}

	return c.JSON(dashboard)
}

func (s *Server) dashboardErrorResponse(c fiber.Ctx, err error) error {
	log.Error().Err(err).Msg("Error generating NPS dashboard")

	switch {
	case errors.Is(err, nps.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_DATE",
				Message: err.Error(),
			},
		})
	case errors.Is(err, crm.ErrNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "CONFIG_ERROR",
				Message: "CRM API URL or key is not configured",
			},
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "UPSTREAM_ERROR",
				Message: "Failed to fetch contacts from CRM: " + err.Error(),
			},
		})
	}
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
