package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/muhammadheryan/storefront-search/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"go.uber.org/zap"
)

// Consumer drains the item index queue and asks the API to refresh each item.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("failed start consumer", zap.Error(err))
	}

	logger.Info("Index consumer running", zap.String("api_url", cfg.Internal.APIURL))
	<-ctx.Done()
	logger.Info("Index consumer stopped")
}
