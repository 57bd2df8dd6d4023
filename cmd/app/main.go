package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lribeiro91/aerogest/api"
	"github.com/lribeiro91/aerogest/config"
	"github.com/lribeiro91/aerogest/internal/bootstrap"
	"github.com/lribeiro91/aerogest/internal/cache"
	"github.com/lribeiro91/aerogest/internal/database"
	"github.com/lribeiro91/aerogest/internal/kafka"
	"github.com/lribeiro91/aerogest/internal/repository"
	"github.com/lribeiro91/aerogest/internal/service/airport"
	"github.com/lribeiro91/aerogest/internal/service/cashflow"
	"github.com/lribeiro91/aerogest/internal/service/employee"
	"github.com/lribeiro91/aerogest/internal/service/flight"
	"github.com/lribeiro91/aerogest/internal/service/passenger"
	"github.com/lribeiro91/aerogest/internal/service/plane"
	"github.com/lribeiro91/aerogest/internal/service/ticket"
	"github.com/shopspring/decimal"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	planeRepo := repository.NewPlaneRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	cashFlowRepo := repository.NewCashFlowRepository(pool)

	airportService := airport.NewAirportService(airportRepo, planeRepo, cashFlowRepo)
	planeService := plane.NewPlaneService(planeRepo)
	flightService := flight.NewFlightService(flightRepo, airportRepo, planeRepo, redisCache)
	employeeService := employee.NewEmployeeService(employeeRepo)
	passengerService := passenger.NewPassengerService(passengerRepo)
	ticketService := ticket.NewTicketService(ticketRepo, passengerRepo, flightRepo)
	cashFlowService := cashflow.NewCashFlowService(
		cashFlowRepo,
		planeRepo,
		airportRepo,
		cashflow.WithProducer(producer, cfg.Kafka.FinanceTopic),
		cashflow.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(api.Handlers{
		Airports:   api.NewAirportHandler(airportService),
		Planes:     api.NewPlaneHandler(planeService),
		Flights:    api.NewFlightHandler(flightService),
		Employees:  api.NewEmployeeHandler(employeeService),
		Passengers: api.NewPassengerHandler(passengerService),
		Tickets:    api.NewTicketHandler(ticketService),
		CashFlows:  api.NewCashFlowHandler(cashFlowService),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
