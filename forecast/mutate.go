package forecast

import (
	"math/rand"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/shopspring/decimal"
)

// MutationResult records which rows were transitioned, in selection order,
// so the event boundary can emit one UPDATE/CANCEL per transition.
type MutationResult struct {
	UpdatedIDs   []string
	CancelledIDs []string
}

// Mutate simulates forecast revision: floor(len*updateRate) rows become
// ADJUSTED and, from the remaining complement, floor(complement*cancelRate)
// rows become CANCELLED. The two sets are disjoint by construction. Adjusted
// rows get an amount tweak of +/-15% (floored at zero) and a due-date shift
// of -3..+5 days; the shift is deliberately not re-clamped into the
// generation window, since real revisions slip past plan boundaries.
// Cancelled rows keep amount and due date but drop probability to zero.
func Mutate(rows []*models.ForecastRecord, updateRate, cancelRate float64, updateRng, cancelRng *rand.Rand, now time.Time) MutationResult {
	var res MutationResult

	nUpdate := int(float64(len(rows)) * updateRate)
	updateIdx := updateRng.Perm(len(rows))[:nUpdate]
	picked := make(map[int]bool, nUpdate)

	for _, i := range updateIdx {
		picked[i] = true
		r := rows[i]

		tweak := -0.15 + updateRng.Float64()*0.30
		amt := r.Amount.Mul(decimal.NewFromFloat(1 + tweak)).Round(2)
		if amt.IsNegative() {
			amt = decimal.Zero
		}
		r.Amount = amt

		shift := randIntRange(updateRng, -3, 5)
		r.DueDate = r.DueDate.AddDate(0, 0, shift)
		r.UpdatedAt = now
		r.Status = models.ForecastStatusAdjusted
		res.UpdatedIDs = append(res.UpdatedIDs, r.ForecastID)
	}

	// Cancel candidates come only from the post-update complement.
	rest := make([]int, 0, len(rows)-nUpdate)
	for i := range rows {
		if !picked[i] {
			rest = append(rest, i)
		}
	}
	nCancel := int(float64(len(rest)) * cancelRate)
	for _, j := range cancelRng.Perm(len(rest))[:nCancel] {
		r := rows[rest[j]]
		r.Status = models.ForecastStatusCancelled
		r.Probability = 0.0
		r.UpdatedAt = now
		res.CancelledIDs = append(res.CancelledIDs, r.ForecastID)
	}
	return res
}
