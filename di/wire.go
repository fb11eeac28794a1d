//go:build wireinject
// +build wireinject

package di

import (
	"adbook/config"
	"adbook/infras/otel"
	"adbook/infras/postgres"
	"adbook/infras/redis"
	"adbook/infras/s3"
	"adbook/internal/record"
	dealHandler "adbook/internal/handlers/deal"
	"adbook/transport/http"
	"adbook/transport/http/middleware"
	"adbook/transport/http/router"

	dealRepository "adbook/internal/domains/deal/repository"
	dealService "adbook/internal/domains/deal/service"

	"github.com/google/wire"

	attachmentRepository "adbook/internal/domains/attachment/repository"
	attachmentService "adbook/internal/domains/attachment/service"
	bookingRepository "adbook/internal/domains/booking/repository"
	bookingService "adbook/internal/domains/booking/service"
	placementRepository "adbook/internal/domains/placement/repository"
	placementService "adbook/internal/domains/placement/service"
	attachmentHandler "adbook/internal/handlers/attachment"
	bookingHandler "adbook/internal/handlers/booking"
	placementHandler "adbook/internal/handlers/placement"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	record.New,
)

var dealDomain = wire.NewSet(
	dealRepository.New,
	dealService.New,
)

var placementDomain = wire.NewSet(
	placementRepository.New,
	placementService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var attachmentDomain = wire.NewSet(
	attachmentRepository.New,
	attachmentService.New,
)

var domains = wire.NewSet(
	dealDomain,
	placementDomain,
	bookingDomain,
	attachmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dealHandler.New,
	placementHandler.New,
	bookingHandler.New,
	attachmentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
