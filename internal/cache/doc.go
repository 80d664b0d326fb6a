// Package cache provides a generic in-memory store with expiry-based
// validity.
//
// The store deliberately separates presence from freshness: Get returns an
// entry of any age while IsValid applies the TTL. That split lets a caller
// treat an expired entry as a miss in the normal path but still fall back to
// it when the upstream source is unavailable.
package cache
