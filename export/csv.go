// Package export serializes finished forecast plans at the I/O boundary.
// It never mutates records; a failed write leaves the in-memory dataset
// valid and re-emittable.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// PlanHeader is the canonical column order of a forecast plan file.
var PlanHeader = []string{
	"forecast_id",
	"business_id",
	"source_system",
	"cashflow_type",
	"direction",
	"amount",
	"currency",
	"due_date",
	"expected_post_date",
	"recurrence_rule",
	"parent_recurring_id",
	"counterparty_name",
	"counterparty_id",
	"category",
	"probability",
	"scenario",
	"status",
	"cost_center",
	"department",
	"gl_account",
	"created_at",
	"updated_at",
	"ingest_ts",
}

// WritePlanCSV streams the plan as CSV, header first.
func WritePlanCSV(w io.Writer, rows []*models.ForecastRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PlanHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(planRow(r)); err != nil {
			return fmt.Errorf("write row %s: %w", r.ForecastID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PlanCSVBytes renders the plan in memory, for GCS uploads.
func PlanCSVBytes(rows []*models.ForecastRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePlanCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlanFile writes the plan to a local CSV file.
func WritePlanFile(path string, rows []*models.ForecastRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePlanCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func planRow(r *models.ForecastRecord) []string {
	return []string{
		r.ForecastID,
		r.BusinessID,
		r.SourceSystem,
		string(r.CashflowType),
		string(r.Direction),
		r.Amount.StringFixed(2),
		r.Currency,
		r.DueDate.Format(models.DateLayout),
		r.ExpectedPostDate.Format(models.DateLayout),
		r.RecurrenceRule,
		r.ParentRecurringID,
		r.CounterpartyName,
		r.CounterpartyID,
		r.Category,
		strconv.FormatFloat(r.Probability, 'f', -1, 64),
		r.Scenario,
		string(r.Status),
		r.CostCenter,
		r.Department,
		r.GLAccount,
		r.CreatedAt.Format(models.TimestampLayout),
		r.UpdatedAt.Format(models.TimestampLayout),
		r.IngestTs.UTC().Format(models.TimestampLayout),
	}
}
