package main // API server entry point

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/config"
	"github.com/jwicker/garden-bed-planner/internal/database"
	"github.com/jwicker/garden-bed-planner/internal/handler"
	"github.com/jwicker/garden-bed-planner/internal/middleware"
	"github.com/jwicker/garden-bed-planner/internal/queue"
	"github.com/jwicker/garden-bed-planner/internal/repository"
	"github.com/jwicker/garden-bed-planner/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	bedRepo := repository.NewBedRepo(db)
	plantRepo := repository.NewPlantRepo(db)
	plantingRepo := repository.NewPlantingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	growerHandler := handler.NewGrowerHandler(bedRepo, plantRepo, plantingRepo, time.Now)

	e := echo.New()
	e.HideBanner = true

	// Redis backs the rate limiter and the response cache.  Both degrade
	// to pass-through when Redis is unreachable at startup.
	var cacheMW echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
		cacheMW = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	} else {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterGrower(e, growerHandler, cfg.JWTSecret, cacheMW)

	// The consumer reconnects on its own; run it for the life of the server.
	go func() {
		if err := queue.StartSuccessionConsumer(); err != nil {
			log.Printf("succession consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
