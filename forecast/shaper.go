package forecast

import (
	"math/rand"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// Shape resizes the candidate set to exactly target rows. Oversized sets are
// down-sampled uniformly without replacement; undersized sets are padded by
// cloning rows sampled with replacement, each clone getting a DUP identifier
// and a created_at nudged 1-5 days earlier so it never collides byte-for-byte
// with its source. Ordering is not preserved here; the caller re-sorts the
// final set globally.
func Shape(rows []*models.ForecastRecord, target int, rng *rand.Rand, alloc *IDAllocator) []*models.ForecastRecord {
	switch {
	case len(rows) > target:
		idx := rng.Perm(len(rows))[:target]
		sampled := make([]*models.ForecastRecord, 0, target)
		for _, i := range idx {
			sampled = append(sampled, rows[i])
		}
		return sampled
	case len(rows) < target:
		need := target - len(rows)
		out := make([]*models.ForecastRecord, len(rows), target)
		copy(out, rows)
		for i := 0; i < need; i++ {
			clone := rows[rng.Intn(len(rows))].Clone()
			clone.ForecastID = alloc.Duplicate()
			clone.CreatedAt = clone.CreatedAt.AddDate(0, 0, -randIntRange(rng, 1, 5))
			out = append(out, clone)
		}
		return out
	}
	return rows
}
