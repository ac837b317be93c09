// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"turipass.io/terminal"
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

// Injectors from wire.go:

func InitializeTerminalService() (*server.Server, error) {
	configConfig, err := config.ProvideApplicationConfig()
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger()
	client := config.ProvideAPIClient(configConfig, logger)
	storeStore := store.New()
	service := branch.NewService(client, storeStore, logger)
	catalogService := catalog.NewService(client, storeStore, logger)
	consumptionService := consumption.NewService(client, storeStore, logger)
	partnerService := partner.NewService(client, storeStore, logger)
	promotionService := promotion.NewService(client, storeStore, logger)
	ratingService := rating.NewService(client, logger)
	redisClient, err := config.ProvideRedis(configConfig)
	if err != nil {
		return nil, err
	}
	statusService := status.NewService(client, redisClient, logger)
	termsService := terms.NewService(client, redisClient, logger)
	terminalTerminal := terminal.NewPartnerGateway(configConfig, service, catalogService, consumptionService, partnerService, promotionService, ratingService, statusService, termsService, storeStore, logger)
	redemptionHandler := handlers.NewRedemptionHandler(terminalTerminal)
	promotionHandler := handlers.NewPromotionHandler(terminalTerminal)
	consumptionHandler := handlers.NewConsumptionHandler(terminalTerminal)
	branchHandler := handlers.NewBranchHandler(terminalTerminal)
	catalogHandler := handlers.NewCatalogHandler(terminalTerminal)
	partnerHandler := handlers.NewPartnerHandler(terminalTerminal)
	serverServer := server.NewServer(redemptionHandler, promotionHandler, consumptionHandler, branchHandler, catalogHandler, partnerHandler)
	return serverServer, nil
}
