package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"apnidisha/internal/cache"
	"apnidisha/internal/config"
	"apnidisha/internal/ivr"
	"apnidisha/internal/quiz"
	"apnidisha/internal/repository"
	"apnidisha/internal/service"
	"apnidisha/internal/transport/rest"
	"apnidisha/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()

	log.Printf("Quiz config:")
	log.Printf("  Static threshold: %d", cfg.StaticQuestionThreshold)
	log.Printf("  Gather timeout:   %ds", cfg.GatherTimeoutSec)
	log.Printf("  Model:            %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  Groq API key:     configured")
	} else {
		log.Println("  Groq API key:     NOT SET (fallback quiz content)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Session store: Redis when configured, in-memory otherwise
	var sessions cache.SessionCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		sessions = cache.NewSessionCache(rdb)
	} else {
		log.Println("Warning: REDIS_ADDR not set, using in-memory sessions")
		sessions = cache.NewMemorySessionCache(30 * time.Minute)
	}

	// Question bank
	bank, err := quiz.LoadBank(cfg.QuestionBankPath)
	if err != nil {
		log.Fatal("Failed to load question bank:", err)
	}
	log.Printf("Loaded question bank: %d statements", bank.Size())

	// Repositories
	collegeRepo := repository.NewCollegeRepo(db)
	contentRepo := repository.NewContentRepo(db)
	streamRepo := repository.NewStreamRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Services
	authSvc := service.NewAuthService()
	callSvc := service.NewCallService(cfg)
	reasoner := service.NewGroqReasoner(aiConfig)
	refiner := service.NewRefinementService(reasoner)
	recommender := service.NewRecommendationService(reasoner)

	// Quiz engine
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := quiz.NewSelector(bank, rng)
	controller := ivr.NewController(sessions, selector, refiner, recommender,
		cfg.StaticQuestionThreshold, cfg.GatherTimeoutSec)
	controller.SetResultRepo(resultRepo)

	wsHub := ws.NewHub()
	controller.SetMonitor(wsHub)

	container := &rest.Container{
		AuthService: authSvc,
		CallService: callSvc,
		Controller:  controller,
		CollegeRepo: collegeRepo,
		ContentRepo: contentRepo,
		StreamRepo:  streamRepo,
		WSHub:       wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/auth/login")
		log.Println("  POST /api/voice/start")
		log.Println("  POST /api/voice/question")
		log.Println("  POST /api/voice/trigger-call")
		log.Println("  GET/POST /api/colleges")
		log.Println("  POST /api/colleges/interest-batch")
		log.Println("  GET/POST /api/content")
		log.Println("  GET/POST /api/streams")
		log.Println("  WS   /api/ws/monitor")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
