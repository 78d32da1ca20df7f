package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const EventPayloadVersion = "v1"

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// ForecastPayload is the wire form of a ForecastRecord inside an event:
// dates and timestamps are rendered as ISO-8601 strings.
type ForecastPayload struct {
	ForecastID        string          `json:"forecast_id"`
	BusinessID        string          `json:"business_id"`
	SourceSystem      string          `json:"source_system"`
	CashflowType      CashflowType    `json:"cashflow_type"`
	Direction         FlowDirection   `json:"direction"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	DueDate           string          `json:"due_date"`
	ExpectedPostDate  string          `json:"expected_post_date"`
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
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
	IngestTs          string          `json:"ingest_ts"`
}

func NewForecastPayload(r *ForecastRecord) ForecastPayload {
	return ForecastPayload{
		ForecastID:        r.ForecastID,
		BusinessID:        r.BusinessID,
		SourceSystem:      r.SourceSystem,
		CashflowType:      r.CashflowType,
		Direction:         r.Direction,
		Amount:            r.Amount,
		Currency:          r.Currency,
		DueDate:           r.DueDate.Format(DateLayout),
		ExpectedPostDate:  r.ExpectedPostDate.Format(DateLayout),
		RecurrenceRule:    r.RecurrenceRule,
		ParentRecurringID: r.ParentRecurringID,
		CounterpartyName:  r.CounterpartyName,
		CounterpartyID:    r.CounterpartyID,
		Category:          r.Category,
		Probability:       r.Probability,
		Scenario:          r.Scenario,
		Status:            r.Status,
		CostCenter:        r.CostCenter,
		Department:        r.Department,
		GLAccount:         r.GLAccount,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
		IngestTs:          r.IngestTs.UTC().Format(time.RFC3339),
	}
}

// ForecastEvent wraps a record for the message bus. One CREATE is emitted per
// record in the final plan; adjusted rows additionally emit an UPDATE and
// cancelled rows a CANCEL, both with post-mutation values.
type ForecastEvent struct {
	EventID        string          `json:"event_id"`
	EventType      EventType       `json:"event_type"`
	EventTs        string          `json:"event_ts"`
	PayloadVersion string          `json:"payload_version"`
	Payload        ForecastPayload `json:"payload"`
}

func NewForecastEvent(eventType EventType, r *ForecastRecord, ts time.Time) ForecastEvent {
	return ForecastEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		EventTs:        ts.UTC().Format(time.RFC3339),
		PayloadVersion: EventPayloadVersion,
		Payload:        NewForecastPayload(r),
	}
}
