package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAPIBaseURL = "MYROOM_API_BASE_URL"
	EnvAPITimeout = "MYROOM_API_TIMEOUT"

	EnvStorageBackend = "STORAGE_BACKEND"
	EnvStorageFileDir = "STORAGE_FILE_DIR"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaHistoryTopic = "KAFKA_HISTORY_TOPIC"

	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvViewedHotelsCapacity   = "VIEWED_HOTELS_CAPACITY"
	EnvRecentSearchesCapacity = "RECENT_SEARCHES_CAPACITY"
	EnvSessionTTL             = "SESSION_TTL"
	EnvSecureCookie           = "SESSION_SECURE_COOKIE"
)
