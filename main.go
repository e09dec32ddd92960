package main

import (
	"net/http"

	"github.com/NextMind-AI/nps-dashboard-go/config"
	"github.com/NextMind-AI/nps-dashboard-go/crm"
	"github.com/NextMind-AI/nps-dashboard-go/nps"
	"github.com/NextMind-AI/nps-dashboard-go/server"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	var httpClient = http.Client{}

	crmClient := crm.NewClient(
		cfg.CRMAPIURL,
		cfg.CRMAPIKey,
		httpClient,
	)

	log.Info().
		Str("crm_api_url", cfg.CRMAPIURL).
		Bool("crm_api_key_set", cfg.CRMAPIKey != "").
		Msg("CRM client created")

	npsService := nps.NewService(&crmClient)

	srv := server.New(npsService, cfg.CORSAllowOrigins, cfg.StaticDir)
	srv.Start(cfg.Port)
}
