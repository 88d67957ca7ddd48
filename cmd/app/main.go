package main

import (
	"tourbase/config"
	"tourbase/di"
	"tourbase/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
