//go:build wireinject
// +build wireinject

package di

import (
	"tourbase/config"
	"tourbase/infras/jwt"
	"tourbase/infras/lock"
	"tourbase/infras/otel"
	"tourbase/infras/postgres"
	"tourbase/infras/redis"
	"tourbase/infras/s3"
	"tourbase/internal/scheduler"
	"tourbase/shared/cache"
	"tourbase/transport/http"
	"tourbase/transport/http/middleware"
	"tourbase/transport/http/router"

	bookingRepository "tourbase/internal/domains/booking/repository"
	bookingService "tourbase/internal/domains/booking/service"
	calendarsyncRepository "tourbase/internal/domains/calendarsync/repository"
	calendarsyncService "tourbase/internal/domains/calendarsync/service"
	pendingRepository "tourbase/internal/domains/pending/repository"
	pendingService "tourbase/internal/domains/pending/service"
	pricingRepository "tourbase/internal/domains/pricing/repository"
	pricingService "tourbase/internal/domains/pricing/service"
	unitRepository "tourbase/internal/domains/unit/repository"
	unitService "tourbase/internal/domains/unit/service"

	bookingHandler "tourbase/internal/handlers/booking"
	calendarsyncHandler "tourbase/internal/handlers/calendarsync"
	pendingHandler "tourbase/internal/handlers/pending"
	pricingHandler "tourbase/internal/handlers/pricing"
	unitHandler "tourbase/internal/handlers/unit"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	lock.New,
	ProvideFeedFetcher,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var unitDomain = wire.NewSet(
	unitRepository.New,
	unitService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var pendingDomain = wire.NewSet(
	pendingRepository.New,
	pendingService.New,
)

var calendarsyncDomain = wire.NewSet(
	calendarsyncRepository.New,
	calendarsyncRepository.NewBusyBlock,
	calendarsyncService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.NewProfile,
	pricingRepository.NewRule,
	pricingRepository.NewCalculationLog,
	pricingService.NewEngine,
	pricingService.New,
)

var domains = wire.NewSet(
	unitDomain,
	bookingDomain,
	pendingDomain,
	calendarsyncDomain,
	pricingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	unitHandler.New,
	bookingHandler.New,
	pendingHandler.New,
	calendarsyncHandler.New,
	pricingHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		scheduler.New,
		NewApp,
	)

	return &App{}
}
