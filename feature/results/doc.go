// Package results owns the persistence side of the comparison engine: the
// scraped-result store with its (source, race year, athlete name) upsert
// key, the TTL cache for canonical result sets, the scraped-to-canonical
// normalizer, and the cross-source merger that unions the two.
//
// Merge semantics: canonical data always wins. A scraped record only joins
// the merged set when no canonical result already occupies its
// (discipline, date) slot.
package results
