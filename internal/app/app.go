package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"photoshare-api/internal/config"
	"photoshare-api/internal/db"
	"photoshare-api/internal/graph"
	"photoshare-api/internal/handlers"
	"photoshare-api/internal/logger"
	"photoshare-api/internal/services"
	"photoshare-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	graphql "github.com/graph-gophers/graphql-go"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Configure(cfg.LogLevel)

	// Seed the store
	seed, err := LoadSeed(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to load seed data", "error", err)
	}
	store := db.NewStore()
	if err := store.Seed(seed); err != nil {
		logger.Fatal("failed to seed store", "error", err)
	}
	logger.Info("store seeded", "users", len(seed.Users), "photos", len(seed.Photos), "tags", len(seed.Tags))

	schema, err := NewSchema(cfg, store)
	if err != nil {
		logger.Fatal("failed to build schema", "error", err)
	}

	app := NewApp(cfg, schema)

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server error", "error", err)
		}
	}()
	logger.Info(fmt.Sprintf("GraphQL Server running @ http://localhost:%s%s", cfg.Port, cfg.GraphQLPath))

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	logger.Info("gracefully shutting down")
	utils.LogError(app.Shutdown(), "shutdown")
	logger.Info("server shutdown complete")
}

// LoadSeed picks the seed source: Postgres when DATABASE_URL is set, then
// SEED_FILE, then the embedded seed.
func LoadSeed(ctx context.Context, cfg *config.Config) (*db.Seed, error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := db.OpenPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return db.LoadSeedFromPostgres(ctx, pool)
	case cfg.SeedFile != "":
		return db.LoadSeedFile(cfg.SeedFile)
	default:
		return db.DefaultSeed()
	}
}

// NewSchema wires the services over store into an executable schema.
func NewSchema(cfg *config.Config, store *db.Store) (*graphql.Schema, error) {
	photos := services.NewPhotoService(store, services.PhotoDefaults{
		Category: cfg.DefaultCategory,
		URLBase:  cfg.PhotoURLBase,
	})
	relations := services.NewRelationService(store)

	var opts []graphql.SchemaOpt
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	return graph.NewSchema(graph.NewResolver(photos, relations), opts...)
}

// NewApp builds the fiber app with all routes registered.
func NewApp(cfg *config.Config, schema *graphql.Schema) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	app.Get("/", handlers.RootHandler)
	app.Get("/playground", handlers.PlaygroundHandler(cfg.GraphQLPath))
	app.Get(cfg.GraphQLPath, handlers.GraphQLHandler(schema))
	app.Post(cfg.GraphQLPath, handlers.GraphQLHandler(schema))

	// Health Check
	app.Get("/health", handlers.HealthHandler)

	return app
}
