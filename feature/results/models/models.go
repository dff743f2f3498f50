package models

// ScrapedResult is a persisted, provider-sourced appearance, parsed out of a
// race-timing provider's public listing. At most one live record exists per
// (source, race year, athlete name); later captures replace earlier ones in
// full. The composite unique index backstops that invariant at the store
// level, since concurrent upserts on the same key are not serialized by the
// application (see DESIGN.md).
type ScrapedResult struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	AthleteName string  `gorm:"column:athlete_name;size:191;index:idx_scraped_athlete;uniqueIndex:idx_scraped_source_race,priority:3" json:"athleteName"`
	AthleteWaID *int    `gorm:"column:athlete_wa_id;index:idx_scraped_athlete_wa" json:"athleteWaId,omitempty"`
	RaceName    string  `gorm:"column:race_name;size:191;index:idx_scraped_race,priority:1" json:"raceName"`
	RaceYear    int     `gorm:"column:race_year;index:idx_scraped_race,priority:2;uniqueIndex:idx_scraped_source_race,priority:2" json:"raceYear"`
	RaceDate    string  `gorm:"column:race_date;size:32" json:"raceDate"`
	Discipline  string  `gorm:"size:128" json:"discipline"`
	Source      string  `gorm:"size:128;uniqueIndex:idx_scraped_source_race,priority:1" json:"source"`
	Mark        string  `gorm:"size:64" json:"mark"`
	Place       int     `json:"place"`
	PlaceGender *int    `json:"placeGender,omitempty"`
	Bib         *string `gorm:"size:32" json:"bib,omitempty"`
	Division    *string `gorm:"size:64" json:"division,omitempty"`
	// ScrapedAt is the capture timestamp in milliseconds since epoch.
	ScrapedAt int64 `json:"scrapedAt"`
}

// TableName overrides the table name.
func (ScrapedResult) TableName() string {
	return "scraped_results"
}

// CachedResults is a canonical-result-set snapshot for one athlete.
// Results holds the JSON-serialized result list; the snapshot is treated
// as absent once FetchedAt is older than the cache TTL.
type CachedResults struct {
	ID          uint   `gorm:"primaryKey"`
	AthleteID   int    `gorm:"column:athlete_id;uniqueIndex:idx_cached_athlete"`
	AthleteName string `gorm:"size:191"`
	Results     string `gorm:"type:longtext"`
	// FetchedAt is the capture timestamp in milliseconds since epoch.
	FetchedAt int64
}

// TableName overrides the table name.
func (CachedResults) TableName() string {
	return "cached_results"
}
