package main

import (
	"go.uber.org/zap"

	"github.com/avorobev/payment-router/internal/app/config"
	server "github.com/avorobev/payment-router/internal/app/controller/http/server"
	"github.com/avorobev/payment-router/internal/app/logger"
	"github.com/avorobev/payment-router/internal/app/provider"
	"github.com/avorobev/payment-router/internal/app/provider/httpgw"
	storage "github.com/avorobev/payment-router/internal/app/storage/api"
	"github.com/avorobev/payment-router/internal/app/usecase/order"
	"github.com/avorobev/payment-router/internal/app/usecase/selector"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	providerConfigs, err := parseProviders(config)
	if err != nil {
		zap.L().Fatal("error while parsing provider registry", zap.Error(err))
	}

	providers := make([]provider.PaymentProvider, 0, len(providerConfigs))
	for _, providerConfig := range providerConfigs {
		gateway, err := httpgw.New(providerConfig, config.ProviderTimeout)
		if err != nil {
			zap.L().Fatal("error while creating provider gateway", zap.Error(err))
		}

		providers = append(providers, gateway)
		zap.L().Info("payment provider registered",
			zap.String("name", providerConfig.Name),
			zap.String("address", providerConfig.Address))
	}

	orderStorage := storage.InitStorage()
	orderService := order.New(orderStorage, selector.New(providers...))

	httpServer := server.New(config, orderService)
	httpServer.StartHTTPServer()
}

func parseProviders(cfg config.Config) ([]config.ProviderConfig, error) {
	return config.ParseProviders(cfg.Providers)
}
