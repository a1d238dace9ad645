package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/trueqia/internal/app"
	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			TrueQIA API
//	@version		1.0
//	@description	Barter offers, token trades and contracts for TrueQIA and Allwain.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(config.New())
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
