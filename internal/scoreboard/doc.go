// Package scoreboard orchestrates cached retrieval of sanitized sheet rows.
//
// The service owns the concurrency-sensitive logic of the system: cache
// freshness checks, single-flight deduplication of upstream fetches, cache
// population after successful sanitization, and the degraded-mode fallback
// that serves stale records when the upstream source fails.
package scoreboard
