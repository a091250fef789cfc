package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                     // .env file loader
	"github.com/labstack/echo/v4"                  // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/deepakn/token-generation-api/internal/config"     // Internal config loader
	"github.com/deepakn/token-generation-api/internal/handler"    // HTTP handlers
	"github.com/deepakn/token-generation-api/internal/middleware" // Redis-backed middleware
	"github.com/deepakn/token-generation-api/internal/queue"      // Usage event consumer
	"github.com/deepakn/token-generation-api/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	cfg := config.Load() // Load environment config
	e := echo.New()
	e.HideBanner = true

	// Request logging and panic recovery; a recovered panic surfaces as 500.
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Redis is optional. A nil client turns both middlewares into no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e, handler.NewTextHandler(cfg))

	// Optional background consumer draining usage events into logs/usage.log.
	if cfg.UsageConsumer {
		go queue.StartUsageConsumer(cfg.AMQPURL)
	}

	addr := cfg.Addr()
	log.Printf("%s v%s listening on %s (env=%s)", cfg.AppName, cfg.AppVersion, addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
