// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Search queries run against the search index and hydrate the ranked hits
// from the primary store; plain listings read the primary store directly.
package queries

import (
	"sort"

	"jobboard/internal/core/domain/model/kernel"
)

// hydrateRanked resolves ranked search-index keys into full records.
//
// The index returns keys in relevance order but the store fetches batches
// in arbitrary order, so the relevance rank of each key is remembered, the
// batch is fetched once, and the results are stably re-sorted by rank.
// Keys the store no longer knows are index drift: the index learned of a
// record whose row has since changed or vanished. Drifted and malformed
// keys are dropped without error, shrinking the page rather than failing
// the search. Duplicate keys keep their first rank.
func hydrateRanked[T any](
	rankedKeys []string,
	fetch func(ids []kernel.UUID) ([]T, error),
	keyOf func(T) string,
) ([]T, error) {
	if len(rankedKeys) == 0 {
		return []T{}, nil
	}

	rank := make(map[string]int, len(rankedKeys))
	ids := make([]kernel.UUID, 0, len(rankedKeys))
	for pos, key := range rankedKeys {
		if _, seen := rank[key]; seen {
			continue
		}
		id, err := kernel.UUIDFromString(key)
		if err != nil {
			continue
		}
		rank[key] = pos
		ids = append(ids, id)
	}

	records, err := fetch(ids)
	if err != nil {
		return nil, err
	}

	ordered := make([]T, 0, len(records))
	for _, record := range records {
		if _, known := rank[keyOf(record)]; known {
			ordered = append(ordered, record)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return rank[keyOf(ordered[i])] < rank[keyOf(ordered[j])]
	})

	return ordered, nil
}
