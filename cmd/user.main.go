package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mishumang/prame/internal/config"
	"github.com/mishumang/prame/internal/handler"
	"github.com/mishumang/prame/internal/repository"
	"github.com/mishumang/prame/internal/router"
	"github.com/mishumang/prame/internal/service"
	oauth2svc "github.com/mishumang/prame/internal/service/oauth2"
	smsclient "github.com/mishumang/prame/internal/service/sms"
	"github.com/mishumang/prame/pkg/cache"
	"github.com/mishumang/prame/pkg/id"
)

func main() {
	cfg := config.Load()

	// mongo
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("ping mongo: %v", err)
	}
	db := client.Database(cfg.MongoDB)

	// redis
	rc := cache.NewCache(cfg.RedisAddr, cfg.RedisPass)
	defer rc.Close()
	if err := rc.Ping(ctx); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	// snowflake
	sf, err := id.NewSnowflake(1)
	if err != nil {
		log.Fatalf("sf: %v", err)
	}

	// repos
	userRepo := repository.NewUserRepo(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("user indexes: %v", err)
	}
	progressRepo := repository.NewProgressRepo(db)
	if err := progressRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("progress indexes: %v", err)
	}
	otpRepo := repository.NewOTPRepo(rc, 4*cfg.OTP_TTL)

	// services
	smsCli := smsclient.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom, cfg.TwilioBaseURL)
	otpSvc := service.NewOTPService(otpRepo, smsCli, cfg.OTP_TTL)
	authSvc := service.NewAuthService(userRepo, sf, oauth2svc.VerifyGoogleToken, cfg.GoogleClientID)
	progressSvc := service.NewProgressService(progressRepo)

	h := handler.NewUserHandler(authSvc, otpSvc, progressSvc, cfg.UploadDir)

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	r := chi.NewRouter()
	router.SetupRoutes(r, h, cfg.UploadDir)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// graceful stop
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
