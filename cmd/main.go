package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"cnres-bot/internal/config"
	"cnres-bot/internal/database"
	"cnres-bot/internal/logger"
	"cnres-bot/internal/menu"
	"cnres-bot/internal/messaging"
	"cnres-bot/internal/notify"
	"cnres-bot/internal/orderstore"
	"cnres-bot/internal/services/fulfillment"
	"cnres-bot/internal/services/notification"
	"cnres-bot/internal/services/order"
)

func main() {
	var (
		mode       = flag.String("mode", "", "Service mode (fulfillment-service, notification-subscriber, menu-loader)")
		port       = flag.Int("port", 3000, "HTTP port")
		configPath = flag.String("config", "config.yaml", "Path to config file")
		prefetch   = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// Local overrides for credentials live in .env; missing is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode": *mode,
		"port": *port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "fulfillment-service":
		err = runFulfillmentService(ctx, cfg, log, *port)
	case "notification-subscriber":
		err = runNotificationSubscriber(ctx, cfg, log, *prefetch)
	case "menu-loader":
		err = runMenuLoader(ctx, cfg, log)
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}
	if err != nil {
		log.Error("service_failed", fmt.Sprintf("%s failed", *mode), requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func runFulfillmentService(ctx context.Context, cfg *config.Config, log *logger.Logger, port int) error {
	requestID := logger.GenerateRequestID()

	source, store, cleanup, err := buildBackends(ctx, cfg, log, requestID)
	if err != nil {
		return err
	}
	defer cleanup()

	notifier, notifierCleanup, err := buildNotifier(ctx, cfg, log, requestID)
	if err != nil {
		return err
	}
	defer notifierCleanup()

	fulfillmentService := fulfillment.NewService(source, store, notifier, log)
	if cfg.Pricing.DefaultPriceEnabled {
		price, err := decimal.NewFromString(cfg.Pricing.DefaultPrice)
		if err != nil {
			return fmt.Errorf("invalid default price %q: %w", cfg.Pricing.DefaultPrice, err)
		}
		fulfillmentService.EnableDefaultPrice(price)
	}
	orderService := order.NewService(source, store, notifier, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	fulfillment.NewHandler(fulfillmentService, log).Routes(r)
	order.NewHandler(orderService, log).Routes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Fulfillment service started on port %d", port), requestID, map[string]interface{}{
			"port":           port,
			"catalog_source": cfg.Catalog.Source,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

// buildBackends wires the menu source and order store for the configured
// catalog source. The static catalog still persists orders to PostgreSQL.
func buildBackends(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) (menu.Source, orderstore.Store, func(), error) {
	switch cfg.Catalog.Source {
	case "dynamodb":
		client, err := dynamoClient(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		source := menu.NewDynamoSource(client, cfg.AWS.MenuTable)
		store := orderstore.NewDynamoStore(client, cfg.AWS.OrdersTable)
		return source, store, func() {}, nil

	case "static", "postgres":
		db, err := database.New(cfg, log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		var source menu.Source
		if cfg.Catalog.Source == "postgres" {
			source = menu.NewPostgresSource(db)
		} else {
			source = menu.NewStaticSource(menu.DefaultCatalog())
		}
		return source, orderstore.NewPostgresStore(db), db.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}
}

// buildNotifier prefers SNS push when a target endpoint is configured,
// otherwise fans out through RabbitMQ.
func buildNotifier(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) (notify.Notifier, func(), error) {
	if cfg.AWS.SNSTargetARN != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		log.Info("sns_configured", "Using SNS push notifications", requestID, map[string]interface{}{
			"target_arn": cfg.AWS.SNSTargetARN,
		})
		return notify.NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.AWS.SNSTargetARN), func() {}, nil
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize messaging: %w", err)
	}
	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	publisher := messaging.NewPublisher(conn, log)
	return notify.NewAMQPNotifier(publisher), func() { conn.Close() }, nil
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	requestID := logger.GenerateRequestID()

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	consumer := messaging.NewConsumer(conn, log, messaging.NotificationQueue, "kitchen-display", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)
	return subscriber.Start(ctx)
}

// runMenuLoader seeds the configured remote menu store with the static
// catalog, one row per normalized name and alias.
func runMenuLoader(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()
	rows := menu.SampleNames(menu.DefaultCatalog())

	var put func(ctx context.Context, sampleName string, e menu.Entry) error
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := database.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()
		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		put = menu.NewPostgresSource(db).Put

	case "dynamodb":
		client, err := dynamoClient(ctx, cfg)
		if err != nil {
			return err
		}
		put = menu.NewDynamoSource(client, cfg.AWS.MenuTable).Put

	default:
		return fmt.Errorf("menu-loader needs catalog source postgres or dynamodb, got %s", cfg.Catalog.Source)
	}

	for sampleName, entry := range rows {
		if err := put(ctx, sampleName, entry); err != nil {
			return err
		}
	}

	log.Info("menu_loaded", "Menu rows written", requestID, map[string]interface{}{
		"rows":   len(rows),
		"target": cfg.Catalog.Source,
	})
	return nil
}

func dynamoClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}
