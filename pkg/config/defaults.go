package config

import "time"

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultAPIBaseURL = "http://localhost:8000/api"
	DefaultAPITimeout = 10 * time.Second

	DefaultStorageBackend = StorageMemory
	DefaultStorageFileDir = "./data/visitors"

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "myroom"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultKafkaHistoryTopic = "myroom.visitor-history"

	DefaultCORSAllowedOrigins = "http://localhost:3000"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultViewedHotelsCapacity   = 8
	DefaultRecentSearchesCapacity = 2
	DefaultSessionTTL             = 30 * 24 * time.Hour
	DefaultSecureCookie           = false
)
