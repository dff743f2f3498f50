package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"head2head/core/athletics"
	"head2head/feature/results/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheTTL is how long a cached canonical result set stays valid.
const CacheTTL = 24 * time.Hour

// Store persists scraped results and cached canonical result snapshots.
type Store struct {
	db *gorm.DB

	// now is the clock, injectable for TTL tests.
	now func() time.Time
}

// NewStore creates a store over the given database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Migrate creates or updates the store's tables and indexes.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.ScrapedResult{}, &models.CachedResults{})
}

// NormalizeAthleteName lowercases and trims a display name so it can serve
// as the store's athlete key ("first last").
func NormalizeAthleteName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UpsertScraped writes a scraped result keyed by (source, race year, athlete
// name). An existing record is replaced field-for-field; there is no
// field-level merge. The capture timestamp is refreshed either way.
//
// Two concurrent upserts on the same key can both observe "not found"; the
// unique index on the key turns the second insert into a conflict, which is
// resolved by updating all columns (last write wins).
func (s *Store) UpsertScraped(ctx context.Context, rec models.ScrapedResult) (models.ScrapedResult, error) {
	rec.AthleteName = NormalizeAthleteName(rec.AthleteName)
	rec.ScrapedAt = s.now().UnixMilli()

	var existing models.ScrapedResult
	err := s.db.WithContext(ctx).
		Where("source = ? AND race_year = ? AND athlete_name = ?", rec.Source, rec.RaceYear, rec.AthleteName).
		First(&existing).Error

	switch {
	case err == nil:
		rec.ID = existing.ID
		if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
			return models.ScrapedResult{}, fmt.Errorf("failed to update scraped result: %w", err)
		}
		return rec, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "source"}, {Name: "race_year"}, {Name: "athlete_name"}},
				UpdateAll: true,
			}).
			Create(&rec).Error
		if err != nil {
			return models.ScrapedResult{}, fmt.Errorf("failed to insert scraped result: %w", err)
		}
		return rec, nil

	default:
		return models.ScrapedResult{}, fmt.Errorf("failed to look up scraped result: %w", err)
	}
}

// ScrapedByName returns all scraped results stored under the normalized
// athlete name.
func (s *Store) ScrapedByName(ctx context.Context, athleteName string) ([]models.ScrapedResult, error) {
	var recs []models.ScrapedResult
	err := s.db.WithContext(ctx).
		Where("athlete_name = ?", NormalizeAthleteName(athleteName)).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query scraped results by name: %w", err)
	}
	return recs, nil
}

// ScrapedByWaID returns all scraped results linked to the canonical athlete id.
func (s *Store) ScrapedByWaID(ctx context.Context, waID int) ([]models.ScrapedResult, error) {
	var recs []models.ScrapedResult
	err := s.db.WithContext(ctx).
		Where("athlete_wa_id = ?", waID).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query scraped results by wa id: %w", err)
	}
	return recs, nil
}

// CachedCanonical returns the cached canonical result set for an athlete.
// The second return value is false when no entry exists or the entry has
// outlived the TTL.
func (s *Store) CachedCanonical(ctx context.Context, athleteID int) ([]athletics.Result, bool, error) {
	var entry models.CachedResults
	err := s.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached results: %w", err)
	}

	if s.now().UnixMilli()-entry.FetchedAt > CacheTTL.Milliseconds() {
		return nil, false, nil
	}

	var results []athletics.Result
	if err := json.Unmarshal([]byte(entry.Results), &results); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached results: %w", err)
	}
	return results, true, nil
}

// PutCachedCanonical overwrites the cached canonical result set for an
// athlete and refreshes the capture timestamp. Writes are idempotent
// overwrites keyed by athlete id, so a duplicate concurrent fetch is benign.
func (s *Store) PutCachedCanonical(ctx context.Context, athleteID int, athleteName string, results []athletics.Result) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results for cache: %w", err)
	}

	entry := models.CachedResults{
		AthleteID:   athleteID,
		AthleteName: athleteName,
		Results:     string(payload),
		FetchedAt:   s.now().UnixMilli(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "athlete_id"}},
			UpdateAll: true,
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write cached results: %w", err)
	}
	return nil
}
