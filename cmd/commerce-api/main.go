package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/vendora/commerce-backend/internal/api"
	"github.com/vendora/commerce-backend/internal/api/handlers"
	"github.com/vendora/commerce-backend/internal/auth"
	"github.com/vendora/commerce-backend/internal/clock"
	"github.com/vendora/commerce-backend/internal/config"
	"github.com/vendora/commerce-backend/internal/repository"
	"github.com/vendora/commerce-backend/internal/service"
	"github.com/vendora/commerce-backend/migrations"
	"github.com/vendora/commerce-backend/pkg/db"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	conn, err := db.NewPostgresConnection(db.LoadPostgresConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer conn.Close()

	if err := migrations.Apply(context.Background(), conn); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	clk := clock.NewSystem()
	tokens := auth.NewTokens(auth.TokenConfig{Secret: cfg.TokenSecret, TTL: cfg.TokenTTL}, clk)

	userRepo := repository.NewUserRepo(conn)
	addressRepo := repository.NewAddressRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)
	productRepo := repository.NewProductRepo(conn)
	cartRepo := repository.NewCartRepo(conn)
	orderRepo := repository.NewOrderRepo(conn)
	couponRepo := repository.NewCouponRepo(conn)
	paymentRepo := repository.NewPaymentRepo(conn)
	shipmentRepo := repository.NewShipmentRepo(conn)
	reviewRepo := repository.NewReviewRepo(conn)

	userSvc := service.NewUserService(conn, userRepo, addressRepo, clk)
	authSvc := service.NewAuthService(userRepo, tokens)
	categorySvc := service.NewCategoryService(conn, categoryRepo, clk)
	productSvc := service.NewProductService(conn, productRepo, categoryRepo, clk)
	cartSvc := service.NewCartService(cartRepo, productRepo, clk)
	orderSvc := service.NewOrderService(conn, orderRepo, cartRepo, productRepo, clk)
	couponSvc := service.NewCouponService(conn, couponRepo, orderRepo, clk)
	paymentSvc := service.NewPaymentService(paymentRepo, orderRepo, clk)
	shipmentSvc := service.NewShipmentService(shipmentRepo, orderRepo, clk)
	reviewSvc := service.NewReviewService(reviewRepo, productRepo, clk)

	router := api.NewRouter(api.Handlers{
		Auth:     handlers.NewAuthHandler(authSvc),
		User:     handlers.NewUserHandler(userSvc),
		Category: handlers.NewCategoryHandler(categorySvc),
		Product:  handlers.NewProductHandler(productSvc),
		Cart:     handlers.NewCartHandler(cartSvc),
		Order:    handlers.NewOrderHandler(orderSvc, couponSvc),
		Payment:  handlers.NewPaymentHandler(paymentSvc),
		Shipment: handlers.NewShipmentHandler(shipmentSvc),
		Review:   handlers.NewReviewHandler(reviewSvc),
		Coupon:   handlers.NewCouponHandler(couponSvc),
	}, tokens, log)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.Addr).Msg("starting commerce-api")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	log.Info().Msg("server stopped")
}
