//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	terminal "turipass.io/terminal"
	"turipass.io/terminal/api"
	"turipass.io/terminal/branch"
	"turipass.io/terminal/catalog"
	"turipass.io/terminal/config"
	"turipass.io/terminal/consumption"
	"turipass.io/terminal/handlers"
	"turipass.io/terminal/partner"
	"turipass.io/terminal/promotion"
	"turipass.io/terminal/rating"
	"turipass.io/terminal/server"
	"turipass.io/terminal/status"
	"turipass.io/terminal/store"
	"turipass.io/terminal/terms"
)

func InitializeTerminalService() (*server.Server, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvideAPIClient,
		config.ProvideRedis,
		store.New,
		wire.Bind(new(branch.Backend), new(*api.Client)),
		wire.Bind(new(catalog.Backend), new(*api.Client)),
		wire.Bind(new(consumption.Backend), new(*api.Client)),
		wire.Bind(new(partner.Backend), new(*api.Client)),
		wire.Bind(new(promotion.Backend), new(*api.Client)),
		wire.Bind(new(rating.Backend), new(*api.Client)),
		wire.Bind(new(status.Backend), new(*api.Client)),
		wire.Bind(new(terms.Backend), new(*api.Client)),
		branch.NewService,
		catalog.NewService,
		consumption.NewService,
		partner.NewService,
		promotion.NewService,
		rating.NewService,
		status.NewService,
		terms.NewService,
		terminal.NewPartnerGateway,
		handlers.NewRedemptionHandler,
		handlers.NewPromotionHandler,
		handlers.NewConsumptionHandler,
		handlers.NewBranchHandler,
		handlers.NewCatalogHandler,
		handlers.NewPartnerHandler,
		server.NewServer,
	)

	return &server.Server{}, nil
}
