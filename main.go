package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"example.com/bookbarn/app/internal/infra/metrics"
	"example.com/bookbarn/app/internal/infra/payment/sslcommerz"
	"example.com/bookbarn/app/internal/infra/persistence/mysql"
	httpapi "example.com/bookbarn/app/internal/interface/http"
	billinguc "example.com/bookbarn/app/internal/usecase/billing"
	bookuc "example.com/bookbarn/app/internal/usecase/book"
	cartuc "example.com/bookbarn/app/internal/usecase/cart"
	checkoutuc "example.com/bookbarn/app/internal/usecase/checkout"
	contactuc "example.com/bookbarn/app/internal/usecase/contact"
	reviewuc "example.com/bookbarn/app/internal/usecase/review"
	useruc "example.com/bookbarn/app/internal/usecase/user"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	_ = godotenv.Load()
	cfg := loadConfig()
	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("frontend", cfg.FrontendURL).
		Msg("starting bookbarn server")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	must(err)
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	must(db.PingContext(ctx))
	cancel()

	must(mysql.RunMigrations(db, cfg.MigrationsDir))
	log.Info().Msg("migrations applied")

	cartRepo := mysql.NewCartRepository(db)
	billingRepo := mysql.NewBillingRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	contactRepo := mysql.NewContactRepository(db)

	gateway := sslcommerz.New(cfg.SSLCzEndpoint, cfg.SSLCzStoreID, cfg.SSLCzStorePass)

	api := httpapi.NewAPI(httpapi.Dependencies{
		CartService: cartuc.NewService(cartRepo),
		CheckoutService: checkoutuc.NewService(cartRepo, billingRepo, gateway, checkoutuc.Config{
			PublicBaseURL: cfg.PublicBaseURL,
			FrontendURL:   cfg.FrontendURL,
		}),
		BillingService: billinguc.NewService(billingRepo),
		BookService:    bookuc.NewService(bookRepo),
		UserService:    useruc.NewService(userRepo),
		ReviewService:  reviewuc.NewService(reviewRepo),
		ContactService: contactuc.NewService(contactRepo),
		FrontendURL:    cfg.FrontendURL,
		Metrics:        metrics.New("server"),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Warn().Msg("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
