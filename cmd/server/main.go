package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/slatehealth/health-plan-backend/internal/agent"
	"github.com/slatehealth/health-plan-backend/internal/config"
	"github.com/slatehealth/health-plan-backend/internal/database"
	"github.com/slatehealth/health-plan-backend/internal/handler"
	"github.com/slatehealth/health-plan-backend/internal/middleware"
	"github.com/slatehealth/health-plan-backend/internal/queue"
	"github.com/slatehealth/health-plan-backend/internal/repository"
	"github.com/slatehealth/health-plan-backend/internal/router"
	queue_publisher "github.com/slatehealth/health-plan-backend/internal/service"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; rate limiting and caching degrade to no-ops
	// without it.
	rdb := config.NewRedisClient()

	// OpenAI is the primary model provider; Anthropic steps in when a key
	// is configured and the primary call fails.
	var llm agent.Completer = agent.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Temperature)
	if cfg.AnthropicAPIKey != "" {
		llm = &agent.FallbackCompleter{
			Primary:   llm,
			Secondary: agent.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		}
	}

	planRepo := repository.NewPlanRepo(db)
	planHandler := &handler.PlanHandler{
		Store:     planRepo,
		Generator: agent.NewOrchestrator(llm),
		Publish:   queue_publisher.PublishPlanGenerated,
	}
	healthHandler := &handler.HealthHandler{DB: db, Redis: rdb, Version: version}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, healthHandler)
	router.RegisterPlans(e, planHandler, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterProtected(e, planHandler, cfg.SupabaseJWTSecret)

	// Consume plan.generated events in the background; the consumer keeps
	// its own reconnect loop.
	go func() {
		if err := queue.StartPlanConsumer(); err != nil {
			log.Printf("plan consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
