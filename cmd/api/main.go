package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/application/alert"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/config"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/dynamo"
	jwtinfra "github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/jwt"
	snsinfra "github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/sns"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/twilio"
	transporthttp "github.com/sheisstarwithoutmoon/SafeLink/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap the DynamoDB table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Identity verifier (optional — unauthenticated callers are served too).
	var verifier *jwtinfra.Verifier
	if v, err := jwtinfra.NewVerifier(cfg); err == nil {
		verifier = v
	} else {
		log.Printf("WARN: identity verifier not available: %v", err)
	}

	// Outbound gateway (SNS falls back to Twilio if its config won't load).
	var sender alert.Sender
	switch cfg.SMSProvider {
	case "sns":
		if s, err := snsinfra.NewSender(cfg); err == nil {
			sender = s
		} else {
			log.Printf("WARN: SNS sender not available, falling back to Twilio: %v", err)
			sender = twilio.NewClient(cfg)
		}
	default:
		sender = twilio.NewClient(cfg)
	}

	deps := &transporthttp.Deps{
		AlertRepo: dynamo.NewAlertRepo(dynamoClient, cfg.DynamoTables.Alerts),
		Sender:    sender,
		Verifier:  verifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, provider=%s)", cfg.AppPort, cfg.AppEnv, cfg.SMSProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
