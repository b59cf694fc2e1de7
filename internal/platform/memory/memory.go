package memory

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// sortedIDs returns the map keys in ascending byte order. Iterating in this
// order is what makes first-match lookups deterministic.
func sortedIDs[V any](m map[uuid.UUID]V) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}
