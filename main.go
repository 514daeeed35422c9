package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/staybook/lodging-booking-service/config"
	"github.com/staybook/lodging-booking-service/internal/handler"
	"github.com/staybook/lodging-booking-service/internal/middleware"
	"github.com/staybook/lodging-booking-service/internal/notification"
	"github.com/staybook/lodging-booking-service/internal/repository"
	"github.com/staybook/lodging-booking-service/internal/scheduler"
	"github.com/staybook/lodging-booking-service/internal/service"
	"github.com/staybook/lodging-booking-service/pkg/database"
	"github.com/staybook/lodging-booking-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: the notification sink for downstream consumers
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	telegram, err := notification.NewTelegramSink(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("failed to set up telegram sink: %v", err)
	}

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	rateRepo := repository.NewNightlyRateRepository(db)
	lodgingRepo := repository.NewLodgingRepository(db)
	touristRepo := repository.NewTouristRepository(db)

	// Engine
	pricing := service.NewPricingEngine()
	capacity := service.NewCapacityValidator(bookingRepo)
	stateMachine := service.NewStateMachine(capacity)
	dispatcher := notification.NewDispatcher(
		notification.NewOwnerObserver(publisher),
		notification.NewTouristObserver(publisher, telegram),
	)

	bookingSvc := service.NewBookingService(
		bookingRepo, rateRepo, lodgingRepo, touristRepo,
		pricing, capacity, stateMachine, dispatcher,
	)

	// Expiration sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.New(bookingSvc, cfg.SweepInterval).Start(ctx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "lodging-booking-service"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Lodging Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
