package cmd

import (
	"context"
	"fmt"
	"log"

	"head2head/core/config"
	"head2head/core/database"
	"head2head/core/logger"
	"head2head/core/webclient"
	"head2head/feature/results"
	"head2head/feature/scrape"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scrapeRace  string
	scrapeYear  int
	scrapeFirst string
	scrapeLast  string
	scrapeWaID  int
)

// scrapeCmd scrapes one athlete's result from a race-timing provider and
// stores it for later comparisons.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a race result for one athlete",
	Long: `Scrape a single athlete's result from a supported race-timing provider
and store it in the scraped-results collection.

Examples:
  # Scrape the 2023 Chicago Marathon for an athlete
  head2head scrape --race chicago --year 2023 --first Kelvin --last Kiptum

  # Link the stored record to a canonical athlete id
  head2head scrape --race chicago --year 2023 --first Kelvin --last Kiptum --wa-id 14208194`,
	RunE: runScrape,
}

func init() {
	RootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapeRace, "race", "", "Race key (e.g. chicago)")
	scrapeCmd.Flags().IntVar(&scrapeYear, "year", 0, "Race year")
	scrapeCmd.Flags().StringVar(&scrapeFirst, "first", "", "Athlete first name")
	scrapeCmd.Flags().StringVar(&scrapeLast, "last", "", "Athlete last name")
	scrapeCmd.Flags().IntVar(&scrapeWaID, "wa-id", 0, "Canonical athlete id (optional)")

	_ = scrapeCmd.MarkFlagRequired("race")
	_ = scrapeCmd.MarkFlagRequired("year")
	_ = scrapeCmd.MarkFlagRequired("first")
	_ = scrapeCmd.MarkFlagRequired("last")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	store := results.NewStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	svc := scrape.NewService(scrape.DefaultRegistry(), webclient.New(cfg.Web), store, logg)

	req := scrape.Request{
		FirstName: scrapeFirst,
		LastName:  scrapeLast,
		RaceKey:   scrapeRace,
		RaceYear:  scrapeYear,
	}
	if scrapeWaID > 0 {
		req.WaID = &scrapeWaID
	}

	outcome, err := svc.Scrape(context.Background(), req)
	if err != nil {
		return err
	}

	if !outcome.Found {
		logg.Warn("No result found", zap.String("message", outcome.Message))
		for _, candidate := range outcome.Candidates {
			fmt.Printf("  candidate: %s\n", candidate)
		}
		return nil
	}

	fmt.Printf("Stored: %s — %s (place %d) at %s %d\n",
		outcome.Result.AthleteName, outcome.Result.Mark, outcome.Result.Place,
		outcome.Result.RaceName, outcome.Result.RaceYear)
	return nil
}
