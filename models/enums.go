package models

import "errors"

type CashflowType string

const (
	CashflowTypeARInvoice   CashflowType = "AR_INVOICE"
	CashflowTypePayroll     CashflowType = "PAYROLL"
	CashflowTypeAPBill      CashflowType = "AP_BILL"
	CashflowTypeTax         CashflowType = "TAX"
	CashflowTypeLoanPayment CashflowType = "LOAN_PAYMENT"
	CashflowTypeCreditDraw  CashflowType = "CREDIT_DRAW"
	CashflowTypeOther       CashflowType = "OTHER"
)

func (t CashflowType) Valid() bool {
	switch t {
	case CashflowTypeARInvoice, CashflowTypePayroll, CashflowTypeAPBill,
		CashflowTypeTax, CashflowTypeLoanPayment, CashflowTypeCreditDraw, CashflowTypeOther:
		return true
	}
	return false
}

// Obligatory flows always carry probability 1.0.
func (t CashflowType) Obligatory() bool {
	switch t {
	case CashflowTypePayroll, CashflowTypeTax, CashflowTypeLoanPayment, CashflowTypeAPBill:
		return true
	}
	return false
}

type FlowDirection string

const (
	FlowDirectionInflow  FlowDirection = "INFLOW"
	FlowDirectionOutflow FlowDirection = "OUTFLOW"
)

type ForecastStatus string

const (
	ForecastStatusPlanned   ForecastStatus = "PLANNED"
	ForecastStatusAdjusted  ForecastStatus = "ADJUSTED"
	ForecastStatusCancelled ForecastStatus = "CANCELLED"
)

func (s ForecastStatus) Valid() bool {
	switch s {
	case ForecastStatusPlanned, ForecastStatusAdjusted, ForecastStatusCancelled:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyBiweekly  Frequency = "BIWEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
)

type IDMode string

const (
	IDModeSequential IDMode = "SEQUENTIAL"
	IDModeUUID       IDMode = "UUID"
)

func ParseIDMode(s string) (IDMode, error) {
	switch IDMode(s) {
	case IDModeSequential:
		return IDModeSequential, nil
	case IDModeUUID:
		return IDModeUUID, nil
	}
	return "", errors.New("invalid id mode: " + s)
}

type EventType string

const (
	EventTypeCreate EventType = "CREATE"
	EventTypeUpdate EventType = "UPDATE"
	EventTypeCancel EventType = "CANCEL"
)

// EventTypeForStatus maps a record's lifecycle status to the event type used
// when replaying an existing plan file.
func EventTypeForStatus(s ForecastStatus) EventType {
	switch s {
	case ForecastStatusAdjusted:
		return EventTypeUpdate
	case ForecastStatusCancelled:
		return EventTypeCancel
	}
	return EventTypeCreate
}
