// Package models defines the persisted shapes owned by the results store:
// scraped provider results and cached canonical result snapshots.
package models
