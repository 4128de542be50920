package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"littlelemon/internal/config"
	"littlelemon/internal/db"
	"littlelemon/internal/events"
	"littlelemon/internal/httpserver"
	"littlelemon/internal/idempotency"
	"littlelemon/internal/importer"
	"littlelemon/internal/logging"
	"littlelemon/internal/migrate"
	bookingrepo "littlelemon/internal/repository/booking"
	contactrepo "littlelemon/internal/repository/contact"
	menurepo "littlelemon/internal/repository/menu"
	orderrepo "littlelemon/internal/repository/order"
	"littlelemon/internal/seed"
	bookingsvc "littlelemon/internal/service/booking"
	cartsvc "littlelemon/internal/service/cart"
	checkoutsvc "littlelemon/internal/service/checkout"
	contactsvc "littlelemon/internal/service/contact"
	menusvc "littlelemon/internal/service/menu"
	sessionsvc "littlelemon/internal/service/session"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger, err := logging.New("api", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var (
		pinger    db.Pinger
		menuRepo  menurepo.Repository
		orderRepo orderrepo.Repository
		contacts  contactrepo.Repository
		submitter bookingsvc.Submitter
	)
	if cfg.DBConnString != "" {
		dbpool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer dbpool.Close()
		if _, err := migrate.Apply(ctx, dbpool, logger); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}

		pinger = dbpool
		menuRepo = menurepo.NewPostgres(dbpool, logger)
		orderRepo = orderrepo.NewPostgres(dbpool)
		contacts = contactrepo.NewPostgres(dbpool)
		submitter = bookingsvc.NewPostgresSubmitter(bookingrepo.NewPostgres(dbpool))
		logger.Info("using postgres storage")
	} else {
		menuRepo = menurepo.NewMemory()
		orderRepo = orderrepo.NewMemory()
		contacts = contactrepo.NewMemory()
		submitter = bookingsvc.MockSubmitter{Delay: cfg.SubmitDelay}
		if err := loadMenu(ctx, cfg.MenuFile, menuRepo); err != nil {
			logger.Fatal("load menu", zap.Error(err))
		}
		logger.Info("using in-memory storage", zap.Duration("submit_delay", cfg.SubmitDelay))
	}

	idem := idempotency.NewMemory()
	if cfg.RedisAddr != "" {
		rdb := idempotency.NewRedisClient(cfg.RedisAddr)
		defer rdb.Close()
		idem = idempotency.NewRedis(rdb)
		logger.Info("idempotency keys stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	publisher := events.Nop()
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("publishing events to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close event publisher", zap.Error(err))
		}
	}()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pinger, httpserver.Deps{
		MenuSvc:     menusvc.New(menuRepo),
		SessionSvc:  sessionsvc.New(cfg.SessionTTL),
		CartSvc:     cartsvc.New(menuRepo),
		BookingSvc:  bookingsvc.New(submitter, idem, publisher, logger),
		CheckoutSvc: checkoutsvc.New(orderRepo, publisher, logger),
		Orders:      orderRepo,
		ContactSvc:  contactsvc.New(contacts, publisher, logger),
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}

// loadMenu fills repo from path, or from the built-in weekly specials when path is empty.
func loadMenu(ctx context.Context, path string, repo menurepo.Repository) error {
	if path == "" {
		_, err := seed.LoadMenu(ctx, repo)
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = importer.NewCSVImporter(f, repo).Run(ctx)
	return err
}
