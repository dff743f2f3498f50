// Package athletics provides the client for the canonical, structured
// results service that serves as the baseline dataset for comparisons.
//
// The service exposes two endpoints: an athlete search returning candidates
// ordered by name-distance score, and a per-athlete results listing. Both
// are plain JSON over HTTP; a non-success status is a fetch failure.
//
// Result rows fetched here are never persisted directly. The read-through
// cache in feature/results stores serialized snapshots with a 24h TTL.
package athletics
