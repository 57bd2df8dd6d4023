package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lribeiro91/aerogest/config"
	"github.com/lribeiro91/aerogest/internal/database"
	"github.com/lribeiro91/aerogest/internal/email"
	"github.com/lribeiro91/aerogest/internal/kafka"
	"github.com/lribeiro91/aerogest/internal/repository"
	"github.com/lribeiro91/aerogest/internal/service/cashflow"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	cashFlowRepo := repository.NewCashFlowRepository(pool)
	planeRepo := repository.NewPlaneRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	cashFlowService := cashflow.NewCashFlowService(cashFlowRepo, planeRepo, airportRepo)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, emailSender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	reportTicker := time.NewTicker(time.Duration(cfg.Worker.ReportSweepMinutes) * time.Minute)
	defer reportTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reportTicker.C:
			report, err := cashFlowService.Report(ctx)
			if err != nil {
				log.Printf("cash flow report error: %v", err)
				continue
			}
			log.Printf("cash flow: balance=%s income=%s expense=%s entries=%d",
				report.Balance.StringFixed(2), report.Income.StringFixed(2), report.Expense.StringFixed(2), len(report.History))
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
