package router

import (
	"github.com/carepoint-dev/carepoint-api/internal/application"
	"github.com/carepoint-dev/carepoint-api/internal/container"
	pginfra "github.com/carepoint-dev/carepoint-api/internal/infrastructure/postgres"
	handlers "github.com/carepoint-dev/carepoint-api/internal/interface/http"
	"github.com/carepoint-dev/carepoint-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(pool)
	apptRepo := pginfra.NewAppointmentRepository(pool)
	medRepo := pginfra.NewMedicineRepository(pool)
	cartRepo := pginfra.NewCartRepository(pool)

	authSvc := application.NewAuthService(
		userRepo,
		tokens,
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		container.GetGCS(),
		cfg.GCSBucket,
	)
	apptSvc := application.NewAppointmentService(apptRepo, userRepo, logger, container.GetRabbitPub())
	medSvc := application.NewMedicineService(medRepo, userRepo, logger, container.GetES(), cfg.ESMedicinesIndex)
	cartSvc := application.NewCartService(cartRepo)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger), tokens, authSvc))
	r.Add(modules.NewAppointmentModule(handlers.NewAppointmentHandler(apptSvc, logger), tokens, authSvc))
	r.Add(modules.NewMedicineModule(handlers.NewMedicineHandler(medSvc, logger), tokens, authSvc))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc), tokens))
}
