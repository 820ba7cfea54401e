package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authconfig "yogic-backend/internal/auth/config"
	contentconfig "yogic-backend/internal/content/config"
	"yogic-backend/internal/di"
	mediaconfig "yogic-backend/internal/media/config"
	"yogic-backend/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"localhost"`
	Port string `env:"SERVER_PORT" envDefault:"5000"`
}

// newErrorHandler keeps routed Fiber errors (404s, 405s, body-limit 413s)
// at their own status code and reserves 500 for everything unexpected.
func newErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		log.Errorf("HTTP error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()

	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	// MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	authCfg, err := authconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(authCfg.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	appLogger.Info("MongoDB connection established")

	mongoDB := mongoClient.Database(authCfg.DatabaseName)

	if err := container.InitializeAuth(mongoDB, authCfg); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}

	// Content module, with an optional Redis listing cache
	contentCfg, err := contentconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load content configuration: %v", err)
	}

	var redisClient *redis.Client
	if contentCfg.CacheEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     contentCfg.RedisAddr,
			Password: contentCfg.RedisPassword,
			DB:       contentCfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Warnf("Redis unavailable, continuing without listing cache: %v", err)
			redisClient.Close()
			redisClient = nil
		} else {
			appLogger.Infof("Redis listing cache enabled at %s", contentCfg.RedisAddr)
		}
	}

	if err := container.InitializeContent(redisClient, contentCfg); err != nil {
		log.Fatalf("Failed to initialize content module: %v", err)
	}

	mediaCfg, err := mediaconfig.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load media configuration: %v", err)
	}
	if err := container.InitializeMedia(mediaCfg); err != nil {
		log.Fatalf("Failed to initialize media module: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Yogic Studio API v1.0",
		BodyLimit:    mediaCfg.BodyLimit(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: newErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	authModule := container.GetAuthModule()
	middleware := authModule.GetMiddleware()
	app.Use(middleware.RequestID())

	// Health endpoint at the root, checked by the hosting platform
	app.Get("/", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Yogic Studio API",
				"status":  "UNHEALTHY",
				"time":    time.Now().UTC(),
			})
		}

		return c.JSON(fiber.Map{
			"message": "Yogic Studio API is running",
			"status":  "HEALTHY",
			"time":    time.Now().UTC(),
		})
	})

	authModule.RegisterRoutes(app)
	container.GetContentModule().RegisterRoutes(app, middleware)
	container.GetMediaModule().RegisterRoutes(app, middleware)

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("All modules initialized, starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}
}
