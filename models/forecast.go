package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceSystem tags every generated record so downstream loaders can tell
// simulated plans apart from real integrations.
const SourceSystem = "mock_csv"

// ForecastRecord is a single forward-looking cashflow line in a liquidity
// plan. Due dates are date-only (UTC midnight); created_at/updated_at carry
// full timestamps. counterparty_id is always blank for simulated data.
type ForecastRecord struct {
	ForecastID        string          `json:"forecast_id"`
	BusinessID        string          `json:"business_id"`
	SourceSystem      string          `json:"source_system"`
	CashflowType      CashflowType    `json:"cashflow_type"`
	Direction         FlowDirection   `json:"direction"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	DueDate           time.Time       `json:"due_date"`
	ExpectedPostDate  time.Time       `json:"expected_post_date"`
	RecurrenceRule    string          `json:"recurrence_rule"`
	ParentRecurringID string          `json:"parent_recurring_id"`
	CounterpartyName  string          `json:"counterparty_name"`
	CounterpartyID    string          `json:"counterparty_id"`
	Category          string          `json:"category"`
	Probability       float64         `json:"probability"`
	Scenario          string          `json:"scenario"`
	Status            ForecastStatus  `json:"status"`
	CostCenter        string          `json:"cost_center"`
	Department        string          `json:"department"`
	GLAccount         string          `json:"gl_account"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	IngestTs          time.Time       `json:"ingest_ts"`
}

// Clone returns a copy of the record. Decimal and time values are immutable,
// a shallow copy is a full copy.
func (r *ForecastRecord) Clone() *ForecastRecord {
	c := *r
	return &c
}
