package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catalog fetches. Using a centralized singleflight.Group
// ensures that only one upstream request runs for a given key while
// other callers wait for the same result.

import "golang.org/x/sync/singleflight"

// SpeciesGroup deduplicates species fetches keyed by the species id or
// name (e.g. "species:25").
var SpeciesGroup singleflight.Group

// ChainGroup deduplicates evolution chain fetches keyed by the chain
// URL reported by the species payload.
var ChainGroup singleflight.Group
