package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/config"
	"autoparts-storefront/internal/db"
	"autoparts-storefront/internal/httpserver"
	"autoparts-storefront/internal/mail"
	categoryrepo "autoparts-storefront/internal/repository/category"
	customerrepo "autoparts-storefront/internal/repository/customer"
	fitmentrepo "autoparts-storefront/internal/repository/fitment"
	orderrepo "autoparts-storefront/internal/repository/order"
	pricingrepo "autoparts-storefront/internal/repository/pricing"
	productrepo "autoparts-storefront/internal/repository/product"
	categorysvc "autoparts-storefront/internal/service/category"
	customersvc "autoparts-storefront/internal/service/customer"
	fitmentsvc "autoparts-storefront/internal/service/fitment"
	ordersvc "autoparts-storefront/internal/service/order"
	pricingsvc "autoparts-storefront/internal/service/pricing"
	productsvc "autoparts-storefront/internal/service/product"
	"autoparts-storefront/internal/state/kv"
	"autoparts-storefront/internal/storefront/account"
	"autoparts-storefront/internal/storefront/catalog"
	"autoparts-storefront/internal/storefront/checkout"
	"autoparts-storefront/internal/storefront/pricing"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	sessions := kv.NewMemory()
	if cfg.RedisAddr != "" {
		rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		sessions = kv.NewRedis(rdb, cfg.SessionTTL)
	} else {
		logger.Printf("REDIS_ADDR not set, keeping sessions in memory")
	}

	var mailer mail.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer, err = mail.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom, logger)
		if err != nil {
			logger.Fatalf("init mailer: %v", err)
		}
	} else {
		mailer = mail.NewLog(logger)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	client := commerce.NewBackend(commerce.Services{
		Products:   productsvc.New(productRepo),
		Categories: categorysvc.New(categoryrepo.NewPostgres(dbpool, logger)),
		Fitment:    fitmentsvc.New(fitmentrepo.NewPostgres(dbpool, logger)),
		Pricing:    pricingsvc.New(pricingrepo.NewPostgres(dbpool, logger)),
		Orders:     ordersvc.New(orderrepo.NewPostgres(dbpool, logger), productRepo),
		Customers:  customersvc.New(customerrepo.NewPostgres(dbpool, logger)),
	}, logger)

	prices := pricing.NewDisplay(client.Pricing(), cfg.RateTTL, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Sessions:       sessions,
		Catalog:        catalog.New(client, prices, cfg.WhatsAppNumber, logger),
		Checkout:       checkout.New(client, prices, mailer, logger),
		Account:        account.New(client, prices, logger),
		CORSOrigins:    cfg.CORSOrigins,
		SessionTTL:     cfg.SessionTTL,
		CookieSecure:   cfg.CookieSecure,
		SearchDebounce: cfg.SearchDebounce,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
