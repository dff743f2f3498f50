// Package scrape turns race-timing provider responses into stored results
// for a target athlete.
//
// Providers are declared in an explicit Registry built at startup; each one
// carries a Strategy variant selecting its parsing protocol. List-markup
// providers are scanned in two stages (rows, then fields within a row);
// paginated JSON providers resolve a year edition from an event
// configuration endpoint and page through a column-described search. Both
// strategies yield the same ParsedRecord shape, so name matching and
// persistence are provider-agnostic.
package scrape
