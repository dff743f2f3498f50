package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"head2head/core/athletics"
	"head2head/core/config"
	"head2head/core/database"
	"head2head/core/loader"
	"head2head/core/logger"
	"head2head/core/middleware/auth"
	"head2head/core/middleware/rayid"
	"head2head/core/webclient"

	"head2head/feature/compare"
	"head2head/feature/results"
	"head2head/feature/scrape"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the head2head server",
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

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Prepare the store and run migrations
		store := results.NewStore(db)
		if err := store.Migrate(); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		// 5. Upstream clients
		web := webclient.New(cfg.Web)
		canonical := athletics.NewClient(cfg.Athletics, web)

		resultsSvc := results.NewService(store, canonical, logg)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 7. Register Features
		mgr := loader.NewManager()
		mgr.Register(compare.NewFeature(resultsSvc, canonical, logg))
		mgr.Register(scrape.NewFeature(scrape.DefaultRegistry(), web, store, logg))

		// Middleware Registration
		// 1. RayID (must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with Zap + RayID
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

		// 3. Auth (protect API when a key is configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
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
