package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	indexapp "github.com/muhammadheryan/storefront-search/application/index"
	productapp "github.com/muhammadheryan/storefront-search/application/product"
	searchapp "github.com/muhammadheryan/storefront-search/application/search"
	websiteapp "github.com/muhammadheryan/storefront-search/application/website"
	"github.com/muhammadheryan/storefront-search/cmd/config"
	redisclient "github.com/muhammadheryan/storefront-search/cmd/redis"
	_ "github.com/muhammadheryan/storefront-search/docs"
	priceRepo "github.com/muhammadheryan/storefront-search/repository/price"
	productRepo "github.com/muhammadheryan/storefront-search/repository/product"
	redisRepo "github.com/muhammadheryan/storefront-search/repository/redis"
	searchRepo "github.com/muhammadheryan/storefront-search/repository/search"
	"github.com/muhammadheryan/storefront-search/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront-search/transport"
	"github.com/muhammadheryan/storefront-search/utils/logger"
	"go.uber.org/zap"
)

// @title STOREFRONT SEARCH API
// @version 1.0
// @description Storefront product listing and search API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client, shared by the price cache and the search index
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// Index refreshes go through RabbitMQ when enabled, inline otherwise
	var publisher indexapp.ItemPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	PriceRepo := priceRepo.NewPriceRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)
	SearchRepo := searchRepo.NewSearchRepository(redisClient)

	// Initialize application layers
	WebsiteInfo := websiteapp.NewWebsiteInfo(cfg, PriceRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo, WebsiteInfo, cfg.Search.MaxPageSize)
	SearchApp := searchapp.NewSearchApp(cfg, SearchRepo, ProductApp)
	IndexApp := indexapp.NewIndexApp(cfg, ProductRepo, SearchRepo, WebsiteInfo, publisher)

	httpTransport := transport.NewTransport(ProductApp, SearchApp, IndexApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
