package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/dsousa/barber-ledger/internal/cli"
	"github.com/dsousa/barber-ledger/internal/config"
	"github.com/dsousa/barber-ledger/internal/infra/storage/snapshot"
	jsonfileStore "github.com/dsousa/barber-ledger/internal/infra/storage/snapshot/jsonfile"
	postgresStore "github.com/dsousa/barber-ledger/internal/infra/storage/snapshot/postgres"
	"github.com/dsousa/barber-ledger/internal/service/catalog"
	"github.com/dsousa/barber-ledger/internal/service/schedule"
	buildAppointmentUC "github.com/dsousa/barber-ledger/internal/usecase/build_appointment"
	clientHistoryUC "github.com/dsousa/barber-ledger/internal/usecase/client_history"
	reportUC "github.com/dsousa/barber-ledger/internal/usecase/report"
	shareMessageUC "github.com/dsousa/barber-ledger/internal/usecase/share_message"
	"github.com/dsousa/barber-ledger/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barber-ledger...")
	log.Info("Configuration loaded from config.toml")

	// Контекст с отменой по SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Инициализируем хранилище снапшотов
	var store snapshot.Store
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore := postgresStore.NewStore(db)
		if err := pgStore.Init(ctx); err != nil {
			log.Fatal("Failed to init snapshots table: %v", err)
		}
		store = pgStore
		log.Info("Using postgres snapshot store (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	case config.BackendJSONFile:
		store = jsonfileStore.NewStore(cfg.Storage.Dir)
		log.Info("Using jsonfile snapshot store (dir=%s)", cfg.Storage.Dir)

	default:
		log.Fatal("Unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Инициализируем сервисы и загружаем снапшоты
	catalogSvc := catalog.NewService(store, log)
	if err := catalogSvc.Load(ctx); err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}

	scheduleSvc := schedule.NewService(store, log)
	if err := scheduleSvc.Load(ctx); err != nil {
		log.Fatal("Failed to load schedule: %v", err)
	}

	// Инициализируем use cases
	builder := buildAppointmentUC.NewUseCase(catalogSvc, scheduleSvc, log)
	history := clientHistoryUC.NewUseCase(scheduleSvc, log)
	reports := reportUC.NewUseCase(scheduleSvc, log)
	share := shareMessageUC.NewUseCase(catalogSvc)

	// Запускаем консоль оператора
	app := cli.NewApp(os.Stdin, os.Stdout, catalogSvc, scheduleSvc, builder, history, reports, share, log)
	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Error("Console exited with error: %v", err)
	}

	log.Info("barber-ledger stopped")
}
