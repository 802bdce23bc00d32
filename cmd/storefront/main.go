package main

import (
	"context"
	"time"

	bookingservice "myroom/internal/bookings/service"
	bookingvalidator "myroom/internal/bookings/validator"
	"myroom/internal/events"
	searchservice "myroom/internal/search/service"
	searchvalidator "myroom/internal/search/validator"
	"myroom/internal/storefront"
	"myroom/pkg/app"
	"myroom/pkg/client"
	"myroom/pkg/config"
	"myroom/pkg/contracts"
	"myroom/pkg/kafka"
	"myroom/pkg/kvstore"
	"myroom/pkg/kvstore/file"
	"myroom/pkg/kvstore/memory"
	"myroom/pkg/kvstore/mongo"
	"myroom/pkg/kvstore/redis"
	"myroom/pkg/logger"
	"myroom/pkg/metrics"
	"myroom/pkg/middleware"
)

const serviceName = "storefront"

func main() {
	cfg := config.Load(serviceName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	log := cfg.Log
	log.Info("Starting storefront service")

	m := metrics.New()
	application := app.NewApplication(cfg, m)

	kv := initStorage(cfg, log)
	application.OnShutdown(app.Closer{Name: "storage", Close: kv.Close})

	publisher := initPublisher(cfg, m, log)
	application.OnShutdown(app.Closer{Name: "events", Close: func(context.Context) error {
		return publisher.Close()
	}})

	limiter := middleware.NewRateLimiter(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		middleware.ClientIPExtractor(),
		log,
	)
	application.OnShutdown(app.Closer{Name: "rate limiter", Close: func(context.Context) error {
		limiter.Stop()
		return nil
	}})

	api := client.NewClient(cfg.APIBaseURL, cfg.APITimeout, log)
	api.SetObserver(m)

	handlers := initHandlers(cfg, api, kv, publisher, limiter, m, log)
	application.SetApp(storefront.NewHealthHandler(kv, log), handlers...)
	application.Run()
}

func initStorage(cfg *config.Config, log *logger.Logger) kvstore.Store {
	switch cfg.StorageBackend {
	case config.StorageFile:
		store, err := file.NewWithTTL(cfg.StorageFileDir, cfg.SessionTTL)
		if err != nil {
			log.Fatal("Failed to open file storage", "dir", cfg.StorageFileDir, "error", err)
		}
		log.Info("Visitor history stored on disk", "dir", cfg.StorageFileDir)
		return store

	case config.StorageRedis:
		store := redis.New(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SessionTTL,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Fatal("Failed to ping Redis", "addr", cfg.RedisAddr, "error", err)
		}
		log.Info("Visitor history stored in Redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return store

	case config.StorageMongo:
		store, err := mongo.Connect(log, mongo.Config{
			URI:          cfg.MongoURI,
			DatabaseName: cfg.MongoDatabaseName,
			ConnTimeout:  cfg.MongoConnTimeout,
			OpTimeout:    cfg.RequestTimeout,
		})
		if err != nil {
			log.Fatal("Failed to open MongoDB storage", "error", err)
		}
		return store

	default:
		log.Warn("Visitor history kept in memory and lost on restart")
		return memory.NewWithTTL(cfg.SessionTTL)
	}
}

func initPublisher(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, history events disabled")
		return events.Noop{}
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaHistoryTopic,
		BatchTimeout: 50 * time.Millisecond,
		RequireAcks:  1,
		Compression:  "snappy",
	}, log)
	if err != nil {
		log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka.LoggingMiddleware(log))
	producer.Use(kafka.MetricsMiddleware(m))

	log.Info("History events enabled", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, log)
}

func initHandlers(
	cfg *config.Config,
	api *client.Client,
	kv kvstore.Store,
	publisher events.Publisher,
	limiter *middleware.RateLimiter,
	m *metrics.Metrics,
	log *logger.Logger,
) []contracts.Handler {
	sessions := storefront.NewSessions(kv, log, storefront.SessionsConfig{
		TTL:                    cfg.SessionTTL,
		ViewedHotelsCapacity:   cfg.ViewedHotelsCapacity,
		RecentSearchesCapacity: cfg.RecentSearchesCapacity,
		SecureCookie:           cfg.SecureCookie,
	})
	sessions.SetObserver(m)

	searchService := searchservice.NewSearchService(api.Search, searchvalidator.NewSearchValidator(log), log)
	bookingService := bookingservice.NewBookingService(api.Bookings, bookingvalidator.NewBookingValidator(log), log)
	log.Info("Storefront services initialized")

	return []contracts.Handler{
		storefront.NewSearchHandler(searchService, sessions, publisher, log),
		storefront.NewHotelHandler(api.Hotels, sessions, publisher, log),
		storefront.NewWishlistHandler(sessions, log),
		storefront.NewBookingHandler(bookingService, limiter, log),
		storefront.NewGeoHandler(log),
	}
}
