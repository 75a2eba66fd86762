package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-sync/core/config"
	"voice-sync/core/database"
	"voice-sync/core/loader"
	"voice-sync/core/logger"
	"voice-sync/core/middleware/auth"
	"voice-sync/core/middleware/rayid"
	"voice-sync/core/provider"
	"voice-sync/core/storage"

	"voice-sync/feature/previews"
	"voice-sync/feature/voices"
	voicemodels "voice-sync/feature/voices/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "voice-sync/docs/swagger"
)

// @title Voice Sync API
// @version 1.0
// @description API for reconciling shared voices across provider accounts.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the voice sync server",
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

		// 3. Connect to Database (optional: the server can still serve
		// previews without it, but the voices feature will be disabled)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			if err := db.AutoMigrate(&voicemodels.Credential{}, &voicemodels.VoiceSync{}); err != nil {
				logg.Fatal("Failed to migrate ledger schema", zap.Error(err))
			}
			logg.Info("Connected to sync ledger database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage and Provider clients
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		providerClient := provider.NewClient(cfg.Provider)
		syncDelay := time.Duration(cfg.Provider.SyncDelayMS) * time.Millisecond

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(voices.NewFeature(db, providerClient, logg, syncDelay))
		mgr.Register(previews.NewFeature(store, cfg.Storage.Bucket, logg))

		// Middleware: RayID first so everything downstream is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth guards everything else
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API authentication disabled; set SERVER_API_KEY in production")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("enabled", mgr.Enabled()))

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
