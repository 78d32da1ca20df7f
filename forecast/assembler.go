package forecast

import (
	"math/rand"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/shopspring/decimal"
)

// Assembler expands every archetype into dated candidate records, one
// business at a time. The archetype order inside a business is fixed
// (payroll, rent, SaaS, tax, loan, AR invoices, credit draws, one-offs) and
// businesses are never interleaved, which keeps the draw sequence stable.
type Assembler struct {
	cfg   *Config
	alloc *IDAllocator
	synth *Synthesizer
	rng   *rand.Rand
	now   time.Time
}

func NewAssembler(cfg *Config, alloc *IDAllocator, rng *rand.Rand, now time.Time) *Assembler {
	return &Assembler{
		cfg:   cfg,
		alloc: alloc,
		synth: NewSynthesizer(rng),
		rng:   rng,
		now:   now,
	}
}

// Build returns the full candidate set across all businesses.
func (a *Assembler) Build() []*models.ForecastRecord {
	var rows []*models.ForecastRecord
	for _, biz := range a.cfg.BusinessIDs {
		rows = append(rows, a.payrollSeries(biz)...)
		rows = append(rows, a.rentSeries(biz)...)
		rows = append(rows, a.saasSeries(biz)...)
		rows = append(rows, a.taxSeries(biz)...)
		rows = append(rows, a.loanSeries(biz)...)
		rows = append(rows, a.invoiceSeries(biz)...)
		rows = append(rows, a.creditDraws(biz)...)
		rows = append(rows, a.oneOffs(biz)...)
	}
	return rows
}

// payroll runs monthly on the 15th, one recurring series per business.
func (a *Assembler) payrollSeries(biz string) []*models.ForecastRecord {
	parent := "RR_PAYROLL_" + biz
	var rows []*models.ForecastRecord
	for _, due := range a.dates(models.FrequencyMonthly, 15) {
		r := a.record(biz, models.CashflowTypePayroll, DirectionFor(models.CashflowTypePayroll), due, due)
		r.Amount = a.synth.Amount(25000, 40000, true)
		r.RecurrenceRule = string(models.FrequencyMonthly)
		r.ParentRecurringID = parent
		r.CounterpartyName = a.synth.Counterparty(models.CashflowTypePayroll)
		r.Category = categoryFor(models.CashflowTypePayroll)
		r.Probability = a.synth.Probability(models.CashflowTypePayroll)
		rows = append(rows, r)
	}
	return rows
}

// rent is an AP bill on the 1st with a fixed counterparty.
func (a *Assembler) rentSeries(biz string) []*models.ForecastRecord {
	parent := "RR_RENT_" + biz
	var rows []*models.ForecastRecord
	for _, due := range a.dates(models.FrequencyMonthly, 1) {
		r := a.record(biz, models.CashflowTypeAPBill, DirectionFor(models.CashflowTypeAPBill), due, due)
		r.Amount = a.synth.Amount(5000, 12000, true)
		r.RecurrenceRule = string(models.FrequencyMonthly)
		r.ParentRecurringID = parent
		r.CounterpartyName = counterpartyRent
		r.Category = categoryRent
		r.Probability = 1.0
		rows = append(rows, r)
	}
	return rows
}

// saas samples 3 distinct vendors per business, one monthly series each on
// the 5th.
func (a *Assembler) saasSeries(biz string) []*models.ForecastRecord {
	var rows []*models.ForecastRecord
	for _, vendor := range sampleStrings(a.rng, vendors, 3) {
		parent := "RR_SAAS_" + seriesTag(vendor) + "_" + biz
		for _, due := range a.dates(models.FrequencyMonthly, 5) {
			r := a.record(biz, models.CashflowTypeAPBill, DirectionFor(models.CashflowTypeAPBill), due, due)
			r.Amount = a.synth.Amount(100, 2000, true)
			r.RecurrenceRule = string(models.FrequencyMonthly)
			r.ParentRecurringID = parent
			r.CounterpartyName = vendor
			r.Category = categorySaaS
			r.Probability = 1.0
			rows = append(rows, r)
		}
	}
	return rows
}

func (a *Assembler) taxSeries(biz string) []*models.ForecastRecord {
	parent := "RR_TAX_" + biz
	var rows []*models.ForecastRecord
	for _, due := range a.dates(models.FrequencyQuarterly, 15) {
		r := a.record(biz, models.CashflowTypeTax, DirectionFor(models.CashflowTypeTax), due, due)
		r.Amount = a.synth.Amount(8000, 40000, true)
		r.RecurrenceRule = string(models.FrequencyQuarterly)
		r.ParentRecurringID = parent
		r.CounterpartyName = counterpartyTax
		r.Category = categoryFor(models.CashflowTypeTax)
		r.Probability = 1.0
		rows = append(rows, r)
	}
	return rows
}

func (a *Assembler) loanSeries(biz string) []*models.ForecastRecord {
	parent := "RR_LOANPAY_" + biz
	var rows []*models.ForecastRecord
	for _, due := range a.dates(models.FrequencyMonthly, 20) {
		r := a.record(biz, models.CashflowTypeLoanPayment, DirectionFor(models.CashflowTypeLoanPayment), due, due)
		r.Amount = a.synth.Amount(3000, 15000, true)
		r.RecurrenceRule = string(models.FrequencyMonthly)
		r.ParentRecurringID = parent
		r.CounterpartyName = counterpartyBank
		r.Category = categoryFor(models.CashflowTypeLoanPayment)
		r.Probability = 1.0
		rows = append(rows, r)
	}
	return rows
}

// invoiceSeries samples 3-6 customers per business; each gets its own
// recurring series with a random cadence and anchor day. Invoices post 0-7
// days after the due date.
func (a *Assembler) invoiceSeries(biz string) []*models.ForecastRecord {
	var rows []*models.ForecastRecord
	count := randIntRange(a.rng, 3, 6)
	for _, cust := range sampleStrings(a.rng, customers, count) {
		freq := invoiceFrequencies[a.rng.Intn(len(invoiceFrequencies))]
		anchor := randIntRange(a.rng, 1, 28)
		parent := "RR_AR_" + seriesTag(cust) + "_" + biz
		for _, due := range a.dates(freq, anchor) {
			post := due.AddDate(0, 0, randIntRange(a.rng, 0, 7))
			r := a.record(biz, models.CashflowTypeARInvoice, DirectionFor(models.CashflowTypeARInvoice), due, post)
			r.Amount = a.synth.Amount(5000, 35000, true)
			r.RecurrenceRule = string(freq)
			r.ParentRecurringID = parent
			r.CounterpartyName = cust
			r.Category = categoryFor(models.CashflowTypeARInvoice)
			r.Probability = a.synth.Probability(models.CashflowTypeARInvoice)
			rows = append(rows, r)
		}
	}
	return rows
}

// creditDraws are 3-6 independent one-offs with due dates uniform in the
// window.
func (a *Assembler) creditDraws(biz string) []*models.ForecastRecord {
	var rows []*models.ForecastRecord
	n := randIntRange(a.rng, 3, 6)
	for i := 0; i < n; i++ {
		due := a.randomDue()
		r := a.record(biz, models.CashflowTypeCreditDraw, DirectionFor(models.CashflowTypeCreditDraw), due, due)
		r.Amount = a.synth.Amount(20000, 100000, true)
		r.CounterpartyName = counterpartyBank
		r.Category = categoryFor(models.CashflowTypeCreditDraw)
		r.Probability = 1.0
		rows = append(rows, r)
	}
	return rows
}

// oneOffs are 5-10 miscellaneous instances with randomized direction.
func (a *Assembler) oneOffs(biz string) []*models.ForecastRecord {
	var rows []*models.ForecastRecord
	n := randIntRange(a.rng, 5, 10)
	for i := 0; i < n; i++ {
		due := a.randomDue()
		dir := a.synth.RandomDirection()
		r := a.record(biz, models.CashflowTypeOther, dir, due, due)
		r.Amount = a.synth.Amount(500, 10000, true)
		r.CounterpartyName = a.synth.Counterparty(models.CashflowTypeOther)
		r.Category = categoryFor(models.CashflowTypeOther)
		r.Probability = a.synth.Probability(models.CashflowTypeOther)
		rows = append(rows, r)
	}
	return rows
}

var invoiceFrequencies = []models.Frequency{
	models.FrequencyWeekly,
	models.FrequencyBiweekly,
	models.FrequencyMonthly,
}

// record fills the fields every archetype shares; the caller sets amount,
// recurrence, counterparty, category and probability.
func (a *Assembler) record(biz string, t models.CashflowType, dir models.FlowDirection, due, post time.Time) *models.ForecastRecord {
	created, updated := a.synth.Timestamps(due)
	return &models.ForecastRecord{
		ForecastID:       a.alloc.Next(t),
		BusinessID:       biz,
		SourceSystem:     models.SourceSystem,
		CashflowType:     t,
		Direction:        dir,
		Amount:           decimal.Zero,
		Currency:         a.cfg.Currency,
		DueDate:          due,
		ExpectedPostDate: post,
		CounterpartyID:   "",
		Scenario:         a.cfg.Scenario,
		Status:           models.ForecastStatusPlanned,
		CostCenter:       a.synth.CostCenter(),
		Department:       a.synth.Department(),
		GLAccount:        a.synth.GLAccount(dir),
		CreatedAt:        created,
		UpdatedAt:        updated,
		IngestTs:         a.now,
	}
}

func (a *Assembler) dates(freq models.Frequency, anchor int) []time.Time {
	return GenerateDates(a.cfg.StartDate, a.cfg.EndDate, freq, anchor)
}

func (a *Assembler) randomDue() time.Time {
	span := int(a.cfg.EndDate.Sub(a.cfg.StartDate).Hours() / 24)
	return a.cfg.StartDate.AddDate(0, 0, randIntRange(a.rng, 0, span))
}

func seriesTag(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", ""))
}
