package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/config"
	"github.com/Demureaxs/weaver-final-v1/internal/delivery/handler"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	redis := infrastructure.NewRedisService(cfg, log)
	defer redis.Close()

	sessions := infrastructure.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	gemini := infrastructure.NewGeminiClient(cfg.GoogleAPIKey)
	stripeGateway := infrastructure.NewStripeGateway(cfg)
	mailer := infrastructure.NewSendgridMailer(cfg.SendgridAPIKey, cfg.EmailFrom, log)
	limiter := infrastructure.NewUserRateLimiter(cfg.GenerateRatePerMinute, cfg.GenerateRateBurst)

	users := db.NewUserRepository(gdb)
	profiles := db.NewProfileRepository(gdb)
	articles := db.NewArticleRepository(gdb)
	books := db.NewBookRepository(gdb)
	chapters := db.NewChapterRepository(gdb)
	characters := db.NewCharacterRepository(gdb)
	worldItems := db.NewWorldItemRepository(gdb)
	sitemaps := db.NewSitemapRepository(gdb)
	payments := db.NewPaymentRepository(gdb)

	authService := services.NewAuthService(users, mailer, log)
	userService := services.NewUserService(users, profiles)
	articleService := services.NewArticleService(articles)
	bookService := services.NewBookService(books, chapters, characters, worldItems)
	sitemapService := services.NewSitemapService(sitemaps)
	keywordService := services.NewKeywordService()
	generationService := services.NewGenerationService(
		profiles, articles, books, chapters, characters, worldItems, sitemaps, gemini, log)
	billingService := services.NewBillingService(stripeGateway, payments, redis, log)

	e := handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService, sessions, redis, log),
		Users:      handler.NewUserHandler(userService, log),
		Articles:   handler.NewArticleHandler(articleService, log),
		Books:      handler.NewBookHandler(bookService, log),
		Sitemaps:   handler.NewSitemapHandler(sitemapService, log),
		Keywords:   handler.NewKeywordHandler(keywordService, log),
		Generation: handler.NewGenerationHandler(generationService, limiter, log),
		Billing:    handler.NewBillingHandler(billingService, stripeGateway, log),
	}, sessions, redis, log)

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
