// Package database provides the GORM database connection used by the
// scraped-result store and the canonical result cache.
//
// MySQL is the production driver; SQLite (including ":memory:") is supported
// for local runs and tests. Connection pooling and timeouts are applied for
// MySQL connections only.
package database
