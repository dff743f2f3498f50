// Package compare implements the head-to-head engine: the finals/relay
// filter, the matchup builder that pairs two athletes' result sets, and the
// discipline re-aggregation over an already-built record.
//
// The builder matches athlete A's appearances against athlete B's by
// (competition id, discipline, date), falling back to (discipline, date) to
// bridge scraped records whose synthesized competition ids differ from the
// canonical ones. Winners are decided by official place, with an unplaced
// result ranked worse than any explicit placing.
package compare
