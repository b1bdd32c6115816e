package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staybook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCurrency        = "RUB"
	DefaultBookingTopic    = "booking.confirmed"
	DefaultBookingDLQTopic = "booking.confirmed.dlq"
	DefaultNotifierGroupID = "staybook-notifier"
	DefaultDispatchTimeout = 10 * time.Second

	DefaultTelegramAPIBaseURL = "https://api.telegram.org/bot"

	DefaultPaginationLimit = 100
)
