package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	catalogapp "oficina/internal/application/catalog"
	clientapp "oficina/internal/application/client"
	financeapp "oficina/internal/application/finance"
	vehicleapp "oficina/internal/application/vehicle"
	workorderapp "oficina/internal/application/workorder"
	"oficina/internal/config"
	"oficina/internal/domain/repository"
	ginserver "oficina/internal/infrastructure/http/gin"
	kafkainfra "oficina/internal/infrastructure/messaging/kafka"
	"oficina/internal/infrastructure/persistence/memory"
	"oficina/internal/infrastructure/persistence/postgres"
	"oficina/internal/interfaces/http/handler"
	"oficina/internal/interfaces/http/router"
	"oficina/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		pool        *pgxpool.Pool
		orderRepo   repository.WorkOrderRepository
		catalogRepo repository.CatalogRepository
		movementRep repository.MovementRepository
		clientRepo  repository.ClientRepository
		vehicleRepo repository.VehicleRepository
		txRepo      repository.TransactionRepository
	)

	pool, err = postgres.NewPool(cfg.DB)
	if err != nil {
		// Local runs without a database fall back to the in-memory store.
		appLog.Warn("postgres unavailable, using in-memory store", logger.Error(err))

		store := memory.NewStore()
		orderRepo = store.WorkOrders()
		catalogRepo = store.Catalog()
		movementRep = store.Movements()
		clientRepo = store.Clients()
		vehicleRepo = store.Vehicles()
		txRepo = store.Transactions()
	} else {
		defer pool.Close()
		orderRepo = postgres.NewWorkOrderRepository(pool)
		catalogRepo = postgres.NewCatalogRepository(pool)
		movementRep = postgres.NewMovementRepository(pool)
		clientRepo = postgres.NewClientRepository(pool)
		vehicleRepo = postgres.NewVehicleRepository(pool)
		txRepo = postgres.NewTransactionRepository(pool)
	}

	producer, err := kafkainfra.NewWorkOrderProducer(cfg.Kafka, appLog)
	if err != nil {
		appLog.Fatal("init kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	orderService := workorderapp.NewService(orderRepo, catalogRepo, movementRep, producer, appLog)

	consumer, err := kafkainfra.NewWorkOrderConsumer(cfg.Kafka, orderService, appLog)
	if err != nil {
		appLog.Fatal("init kafka consumer failed", logger.Error(err))
	}
	go func() {
		if err := consumer.Start(ctx); err != nil {
			appLog.Error("kafka consumer stopped", logger.Error(err))
		}
	}()
	defer consumer.Close()

	engine := ginserver.NewEngine(appLog)
	router.RegisterRoutes(engine, router.Handlers{
		WorkOrders: handler.NewWorkOrderHandler(orderService),
		Catalog:    handler.NewCatalogHandler(catalogapp.NewService(catalogRepo, movementRep, appLog)),
		Clients:    handler.NewClientHandler(clientapp.NewService(clientRepo)),
		Vehicles:   handler.NewVehicleHandler(vehicleapp.NewService(vehicleRepo, clientRepo)),
		Finance:    handler.NewFinanceHandler(financeapp.NewService(txRepo)),
		Health:     handler.NewHealthHandler(pool),
	})

	server := ginserver.NewServer(cfg.Server, engine)
	appLog.Info("api listening", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
