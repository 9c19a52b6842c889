package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"buildmart/internal/config"
	"buildmart/internal/db"
	"buildmart/internal/httpserver"
	contentrepo "buildmart/internal/repository/content"
	inventoryrepo "buildmart/internal/repository/inventory"
	messagerepo "buildmart/internal/repository/message"
	productrepo "buildmart/internal/repository/product"
	reviewrepo "buildmart/internal/repository/review"
	salerepo "buildmart/internal/repository/sale"
	tokenrepo "buildmart/internal/repository/token"
	userrepo "buildmart/internal/repository/user"
	authsvc "buildmart/internal/service/auth"
	catalogsvc "buildmart/internal/service/catalog"
	checkoutsvc "buildmart/internal/service/checkout"
	contactsvc "buildmart/internal/service/contact"
	contentsvc "buildmart/internal/service/content"
	reviewsvc "buildmart/internal/service/review"
	salessvc "buildmart/internal/service/sales"
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

	productRepo := productrepo.NewPostgres(dbpool, logger)
	inventoryRepo := inventoryrepo.NewPostgres(dbpool, logger)
	saleRepo := salerepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	reviewRepo := reviewrepo.NewPostgres(dbpool)
	messageRepo := messagerepo.NewPostgres(dbpool)
	contentRepo := contentrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, tokenRepo, cfg.SessionTTL)
	catalogService := catalogsvc.New(productRepo, inventoryRepo)
	checkoutService := checkoutsvc.New(inventoryRepo, saleRepo)
	salesService := salessvc.New(saleRepo)
	reviewService := reviewsvc.New(reviewRepo)
	contactService := contactsvc.New(messageRepo)
	contentService := contentsvc.New(contentRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		CheckoutSvc: checkoutService,
		CatalogSvc:  catalogService,
		SalesSvc:    salesService,
		ReviewSvc:   reviewService,
		ContactSvc:  contactService,
		ContentSvc:  contentService,
	}, cfg.CORSOrigins)
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
