package cmd

import (
	"context"
	"fmt"
	"log"

	"head2head/core/athletics"
	"head2head/core/config"
	"head2head/core/database"
	"head2head/core/logger"
	"head2head/core/webclient"
	"head2head/feature/compare"
	"head2head/feature/results"

	"github.com/spf13/cobra"
)

var compareDiscipline string

// compareCmd builds and prints the head-to-head record for two athletes.
var compareCmd = &cobra.Command{
	Use:   "compare <athlete A> <athlete B>",
	Short: "Compare two athletes head-to-head",
	Long: `Search both athletes on the canonical results service, fetch their
results (merged with any stored scraped results), and print the
head-to-head record.

Examples:
  head2head compare "Cole Hocker" "Cooper Teare"
  head2head compare "Cole Hocker" "Cooper Teare" --discipline "1500 Metres"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	RootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareDiscipline, "discipline", "", "Restrict the record to one discipline")
}

func runCompare(cmd *cobra.Command, args []string) error {
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

	web := webclient.New(cfg.Web)
	canonical := athletics.NewClient(cfg.Athletics, web)
	svc := compare.NewService(results.NewService(store, canonical, logg), canonical, logg)

	ctx := context.Background()

	a, err := resolveAthlete(ctx, canonical, args[0])
	if err != nil {
		return err
	}
	b, err := resolveAthlete(ctx, canonical, args[1])
	if err != nil {
		return err
	}

	rec, err := svc.Compare(ctx, a, b, compareDiscipline)
	if err != nil {
		return err
	}

	printRecord(rec, a, b)
	return nil
}

// resolveAthlete picks the best canonical search match for a query name.
func resolveAthlete(ctx context.Context, client athletics.Client, name string) (compare.AthleteRef, error) {
	found, err := client.Search(ctx, name)
	if err != nil {
		return compare.AthleteRef{}, err
	}
	if len(found) == 0 {
		return compare.AthleteRef{}, fmt.Errorf("no athlete found for %q", name)
	}

	best := found[0]
	fmt.Printf("Found: %s %s (ID %d, %s)\n", best.Firstname, best.Lastname, best.ID, best.Country)
	return compare.AthleteRef{ID: best.ID, FirstName: best.Firstname, LastName: best.Lastname}, nil
}

func printRecord(rec compare.Record, a, b compare.AthleteRef) {
	nameA := a.FirstName + " " + a.LastName
	nameB := b.FirstName + " " + b.LastName

	if rec.Total == 0 {
		fmt.Println("\nNo shared races found in available results.")
		return
	}

	fmt.Printf("\nHEAD-TO-HEAD: %s vs %s\n", nameA, nameB)
	fmt.Printf("Record: %s %d - %d %s\n", nameA, rec.WinsA, rec.WinsB, nameB)
	if rec.Ties > 0 {
		fmt.Printf("Ties: %d\n", rec.Ties)
	}
	fmt.Printf("Total shared races: %d\n\n", rec.Total)

	for i, m := range rec.Matchups {
		fmt.Printf("Race %d: %s | %s | %s\n", i+1, m.Date, m.Discipline, m.Competition)
		if m.Venue != "" {
			fmt.Printf("        Venue: %s\n", m.Venue)
		}
		fmt.Printf("        %s: %s (place %d)\n", nameA, m.AthleteA.Mark, m.AthleteA.Place)
		fmt.Printf("        %s: %s (place %d)\n", nameB, m.AthleteB.Mark, m.AthleteB.Place)
		switch m.Winner {
		case "a":
			fmt.Printf("        Winner: %s\n\n", nameA)
		case "b":
			fmt.Printf("        Winner: %s\n\n", nameB)
		default:
			fmt.Printf("        Winner: Tie\n\n")
		}
	}
}
