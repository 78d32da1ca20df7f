package forecast

import (
	"math/rand"
	"testing"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/shopspring/decimal"
)

func TestAmount_SkewedDrawsStayInBand(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(1)))
	low := decimal.NewFromInt(100)
	high := decimal.NewFromInt(2000)

	for i := 0; i < 10000; i++ {
		amt := s.Amount(100, 2000, true)
		if amt.LessThan(low) || amt.GreaterThan(high) {
			t.Fatalf("draw %d: amount %s outside [100, 2000]", i, amt)
		}
	}
}

func TestAmount_UniformDrawsStayInBand(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(2)))
	low := decimal.NewFromInt(500)
	high := decimal.NewFromInt(10000)

	for i := 0; i < 1000; i++ {
		amt := s.Amount(500, 10000, false)
		if amt.LessThan(low) || amt.GreaterThan(high) {
			t.Fatalf("draw %d: amount %s outside [500, 10000]", i, amt)
		}
	}
}

func TestProbability_Bands(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(3)))

	for _, obligatory := range []models.CashflowType{
		models.CashflowTypePayroll, models.CashflowTypeTax,
		models.CashflowTypeLoanPayment, models.CashflowTypeAPBill,
	} {
		if p := s.Probability(obligatory); p != 1.0 {
			t.Fatalf("%s: expected probability 1.0, got %v", obligatory, p)
		}
	}

	for i := 0; i < 1000; i++ {
		if p := s.Probability(models.CashflowTypeARInvoice); p < 0.80 || p > 0.98 {
			t.Fatalf("draw %d: invoice probability %v outside [0.80, 0.98]", i, p)
		}
		if p := s.Probability(models.CashflowTypeOther); p < 0.85 || p > 0.99 {
			t.Fatalf("draw %d: one-off probability %v outside [0.85, 0.99]", i, p)
		}
	}
}

func TestDirectionFor_DeterministicPerArchetype(t *testing.T) {
	cases := map[models.CashflowType]models.FlowDirection{
		models.CashflowTypeARInvoice:   models.FlowDirectionInflow,
		models.CashflowTypeCreditDraw:  models.FlowDirectionInflow,
		models.CashflowTypePayroll:     models.FlowDirectionOutflow,
		models.CashflowTypeAPBill:      models.FlowDirectionOutflow,
		models.CashflowTypeTax:         models.FlowDirectionOutflow,
		models.CashflowTypeLoanPayment: models.FlowDirectionOutflow,
	}
	for cf, want := range cases {
		if got := DirectionFor(cf); got != want {
			t.Fatalf("%s: expected %s, got %s", cf, want, got)
		}
	}
}

func TestCounterparty_FixedAndVocabulary(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(4)))

	if got := s.Counterparty(models.CashflowTypePayroll); got != counterpartyStaff {
		t.Fatalf("payroll counterparty: got %q", got)
	}
	if got := s.Counterparty(models.CashflowTypeTax); got != counterpartyTax {
		t.Fatalf("tax counterparty: got %q", got)
	}
	if got := s.Counterparty(models.CashflowTypeLoanPayment); got != counterpartyBank {
		t.Fatalf("loan counterparty: got %q", got)
	}

	inList := func(v string, list []string) bool {
		for _, x := range list {
			if x == v {
				return true
			}
		}
		return false
	}
	for i := 0; i < 100; i++ {
		if got := s.Counterparty(models.CashflowTypeARInvoice); !inList(got, customers) {
			t.Fatalf("invoice counterparty %q not in customer list", got)
		}
		if got := s.Counterparty(models.CashflowTypeAPBill); !inList(got, vendors) {
			t.Fatalf("bill counterparty %q not in vendor list", got)
		}
	}
}

func TestTimestamps_CreatedPrecedesDueBy15To60Days(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(5)))
	due := date(2025, 10, 15)

	for i := 0; i < 500; i++ {
		created, updated := s.Timestamps(due)
		if !updated.Equal(created) {
			t.Fatalf("updated_at must start equal to created_at")
		}
		days := int(due.Sub(created).Hours() / 24)
		if days < 15 || days > 60 {
			t.Fatalf("draw %d: created_at offset %d days outside [15, 60]", i, days)
		}
	}
}
