package keys

import (
	"fmt"
	"math/rand"
	"strings"
)

const uidCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
const uidLength = 12

// NewCreatureUID creates a short random instance id for an owned
// creature. Instance ids are stable for the creature's lifetime and
// survive evolution; capture and trade always mint a fresh one.
func NewCreatureUID() string {
	b := make([]byte, uidLength)
	for i := range b {
		b[i] = uidCharset[rand.Intn(len(uidCharset))]
	}
	return "c-" + string(b)
}

// SpeciesCacheKey produces the canonical cache/dedupe key for a species
// lookup. Numeric ids and names share the same namespace; names are
// trimmed and lower-cased so "Pikachu" and "pikachu " collapse to one
// cache row.
func SpeciesCacheKey(idOrName string) string {
	return "species:" + strings.ToLower(strings.TrimSpace(idOrName))
}

// SpeciesCacheKeyID is SpeciesCacheKey for a numeric species id.
func SpeciesCacheKeyID(id int) string {
	return fmt.Sprintf("species:%d", id)
}

// ChainCacheKey produces the cache/dedupe key for an evolution chain
// lookup keyed by its upstream URL.
func ChainCacheKey(url string) string {
	return "chain:" + strings.TrimSpace(url)
}
