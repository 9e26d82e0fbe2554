package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/justsurfingit/job-board/docs"
	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/validation"
)

// @title Job Board API
// @version 1.0
// @description Tracks job applications across the stages of a hiring pipeline.

// @host localhost:8000
// @BasePath /api
// @schemes http

func main() {
	seed := flag.Bool("seed", false, "insert sample job applications before serving")
	flag.Parse()

	cfg := config.Load()
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.IsLocal() && cfg.DBDebug)
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}
	log.Println("✅ Database connected")

	ctx := context.Background()
	if *seed {
		n, err := database.Seed(ctx, db)
		if err != nil {
			log.Fatal("❌ Failed to seed database: ", err)
		}
		log.Printf("🌱 Seeded %d job applications", n)
	}

	v, err := validation.New()
	if err != nil {
		log.Fatal("❌ Failed to set up validation: ", err)
	}

	llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("⚠️  Job extraction unavailable: %v", err)
	} else if llm == nil {
		log.Println("⚠️  GEMINI_API_KEY not set, job extraction disabled")
	}

	jobs := handlers.NewJobApplicationHandler(services.NewJobApplicationService(db), v, llm)

	// Sign-out stops the server the same way a signal does.
	signOut := make(chan struct{}, 1)
	shutdown := func() {
		select {
		case signOut <- struct{}{}:
		default:
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(cfg.AllowedOrigins(), jobs, shutdown),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // extraction waits on the model
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			log.Println("🛑 Received interrupt signal, shutting down...")
		case <-signOut:
			log.Println("👋 Sign-out requested, shutting down...")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("❌ Server failed to start: ", err)
	}

	<-idleConnsClosed

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped")
}
