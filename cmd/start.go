package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sku-mapper/core/config"
	"sku-mapper/core/loader"
	"sku-mapper/core/logger"
	"sku-mapper/core/match"
	"sku-mapper/core/middleware/auth"
	"sku-mapper/core/middleware/rayid"
	"sku-mapper/core/storage"

	"sku-mapper/feature/mapper"
	"sku-mapper/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "sku-mapper/docs/swagger"
)

// @title SKU Mapper API
// @version 1.0
// @description API for mapping seller SKUs to canonical MSKUs and reconciling inventory.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the SKU mapper server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Snapshot Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Snapshot storage connection failed, checkpointing disabled", zap.Error(err))
			} else if err := storage.EnsureBucket(context.Background(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Snapshot bucket unavailable, checkpointing disabled", zap.Error(err))
			} else {
				store = client
				logg.Info("Connected to snapshot storage", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(mapper.NewFeature(logg, match.TokenSortScorer{}, cfg.Mapper.Threshold, store, cfg.Storage.Bucket))
		mgr.Register(snapshot.NewFeature(store, cfg.Storage.Bucket, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
