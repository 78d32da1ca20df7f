package forecast

import (
	"math"
	"math/rand"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/shopspring/decimal"
)

// lognormalSigma is the fixed spread of the skewed amount draw. With the mean
// parameter at ln((low+high)/2) it biases draws toward mid-band values.
const lognormalSigma = 0.5

// Synthesizer produces the randomized attributes of a forecast record. All
// draws come from the rng it was built with, so a seeded rng makes every
// attribute sequence reproducible.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Amount draws a positive value inside [low, high]. Skewed draws are
// log-normal around the band midpoint, clipped into the band; unskewed draws
// are uniform.
func (s *Synthesizer) Amount(low, high float64, skew bool) decimal.Decimal {
	var v float64
	if skew {
		v = math.Exp(math.Log((low+high)/2) + lognormalSigma*s.rng.NormFloat64())
		v = math.Min(math.Max(v, low), high)
	} else {
		v = low + s.rng.Float64()*(high-low)
	}
	return decimal.NewFromFloat(v).Round(2)
}

// Probability is 1.0 for obligatory flows, a bounded uniform band otherwise.
func (s *Synthesizer) Probability(t models.CashflowType) float64 {
	if t.Obligatory() {
		return 1.0
	}
	var low, high float64
	if t == models.CashflowTypeARInvoice {
		low, high = 0.80, 0.98
	} else {
		low, high = 0.85, 0.99
	}
	return round2(low + s.rng.Float64()*(high-low))
}

// DirectionFor is deterministic per archetype; OTHER is randomized by the
// caller via RandomDirection.
func DirectionFor(t models.CashflowType) models.FlowDirection {
	if t == models.CashflowTypeARInvoice || t == models.CashflowTypeCreditDraw {
		return models.FlowDirectionInflow
	}
	return models.FlowDirectionOutflow
}

func (s *Synthesizer) RandomDirection() models.FlowDirection {
	if s.rng.Intn(2) == 0 {
		return models.FlowDirectionInflow
	}
	return models.FlowDirectionOutflow
}

func (s *Synthesizer) Counterparty(t models.CashflowType) string {
	switch t {
	case models.CashflowTypeARInvoice:
		return choiceString(s.rng, customers)
	case models.CashflowTypePayroll:
		return counterpartyStaff
	case models.CashflowTypeTax:
		return counterpartyTax
	case models.CashflowTypeLoanPayment, models.CashflowTypeCreditDraw:
		return counterpartyBank
	case models.CashflowTypeAPBill:
		return choiceString(s.rng, vendors)
	}
	all := make([]string, 0, len(customers)+len(vendors))
	all = append(all, customers...)
	all = append(all, vendors...)
	return choiceString(s.rng, all)
}

func (s *Synthesizer) GLAccount(d models.FlowDirection) string {
	if d == models.FlowDirectionInflow {
		return choiceString(s.rng, glInflow)
	}
	return choiceString(s.rng, glOutflow)
}

func (s *Synthesizer) CostCenter() string {
	return choiceString(s.rng, costCenters)
}

func (s *Synthesizer) Department() string {
	return choiceString(s.rng, departments)
}

// Timestamps places created_at a random 15-60 days before the due date
// (time of day zeroed); updated_at starts equal and only advances on
// mutation.
func (s *Synthesizer) Timestamps(dueDate time.Time) (createdAt, updatedAt time.Time) {
	daysBefore := randIntRange(s.rng, 15, 60)
	createdAt = dueDate.AddDate(0, 0, -daysBefore)
	return createdAt, createdAt
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
