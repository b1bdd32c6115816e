package main

import (
	bookingshandler "staybook/internal/bookings/handler"
	bookingsrepository "staybook/internal/bookings/repository"
	bookingsservice "staybook/internal/bookings/service"
	bookingsvalidator "staybook/internal/bookings/validator"
	"staybook/internal/calendar"
	"staybook/internal/notifier"
	propertieshandler "staybook/internal/properties/handler"
	propertiesrepository "staybook/internal/properties/repository"
	propertiesservice "staybook/internal/properties/service"
	propertiesvalidator "staybook/internal/properties/validator"
	"staybook/internal/stats"
	"staybook/pkg/app"
	"staybook/pkg/config"
	"staybook/pkg/contracts"
	"staybook/pkg/kafka"
	kafka_config "staybook/pkg/kafka/config"
	kafka_middleware "staybook/pkg/kafka/middleware"
)

const ServiceName = "staybook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	producer := initProducer(cfg)
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}()

	cfg.Log.Info("Starting Staybook service")
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg, producer)...)
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingTopic, cfg.BookingDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafka_middleware.MetricsProducerMiddleware())

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.BookingTopic, "dlq_topic", cfg.BookingDLQTopic)
	return producer
}

func initHandlers(cfg *config.Config, producer *kafka.Producer) []contracts.Handler {
	propertyValidator := propertiesvalidator.NewPropertyValidator(cfg.Log)
	propertyRepo := propertiesrepository.NewMongoPropertyRepository(cfg)
	propertyService := propertiesservice.NewPropertyService(propertyRepo, propertyValidator, cfg)

	dispatcher := notifier.NewKafkaDispatcher(producer, cfg)

	bookingValidator := bookingsvalidator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingsservice.NewBookingService(bookingRepo, bookingValidator, dispatcher, cfg)

	calendarService := calendar.NewCalendarService(bookingService, cfg)
	statsService := stats.NewStatsService(propertyRepo, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		propertieshandler.NewPropertyHandler(propertyService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		calendar.NewHandler(calendarService, cfg.Log),
		stats.NewHandler(statsService, cfg.Log),
	}
}
