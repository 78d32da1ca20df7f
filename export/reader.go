package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"bitbucket.org/mmdatafocus/forecast_backend/utils"
	"github.com/shopspring/decimal"
)

// LoadPlan reads a forecast plan CSV from a local path or a gs://bucket/path
// URI.
func LoadPlan(ctx context.Context, uri string) ([]*models.ForecastRecord, error) {
	var data []byte
	var err error
	if strings.HasPrefix(uri, "gs://") {
		data, err = utils.DownloadFromGCS(ctx, uri)
	} else {
		data, err = os.ReadFile(uri)
	}
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", uri, err)
	}
	return ParsePlanCSV(bytes.NewReader(data))
}

// ParsePlanCSV maps columns by header name, so files with extra or reordered
// columns still load.
func ParsePlanCSV(r io.Reader) ([]*models.ForecastRecord, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["forecast_id"]; !ok {
		return nil, fmt.Errorf("plan csv is missing forecast_id column")
	}

	var rows []*models.ForecastRecord
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		row := &models.ForecastRecord{
			ForecastID:        get("forecast_id"),
			BusinessID:        get("business_id"),
			SourceSystem:      get("source_system"),
			CashflowType:      models.CashflowType(get("cashflow_type")),
			Direction:         models.FlowDirection(get("direction")),
			Currency:          get("currency"),
			RecurrenceRule:    get("recurrence_rule"),
			ParentRecurringID: get("parent_recurring_id"),
			CounterpartyName:  get("counterparty_name"),
			CounterpartyID:    get("counterparty_id"),
			Category:          get("category"),
			Scenario:          get("scenario"),
			Status:            models.ForecastStatus(get("status")),
			CostCenter:        get("cost_center"),
			Department:        get("department"),
			GLAccount:         get("gl_account"),
		}
		if row.Status == "" {
			row.Status = models.ForecastStatusPlanned
		}
		if row.Amount, err = parseDecimal(get("amount")); err != nil {
			return nil, fmt.Errorf("line %d amount: %w", line, err)
		}
		if row.Probability, err = parseFloat(get("probability")); err != nil {
			return nil, fmt.Errorf("line %d probability: %w", line, err)
		}
		if row.DueDate, err = parseDate(get("due_date")); err != nil {
			return nil, fmt.Errorf("line %d due_date: %w", line, err)
		}
		if row.ExpectedPostDate, err = parseDate(get("expected_post_date")); err != nil {
			return nil, fmt.Errorf("line %d expected_post_date: %w", line, err)
		}
		if row.CreatedAt, err = parseTimestamp(get("created_at")); err != nil {
			return nil, fmt.Errorf("line %d created_at: %w", line, err)
		}
		if row.UpdatedAt, err = parseTimestamp(get("updated_at")); err != nil {
			return nil, fmt.Errorf("line %d updated_at: %w", line, err)
		}
		if row.IngestTs, err = parseTimestamp(get("ingest_ts")); err != nil {
			return nil, fmt.Errorf("line %d ingest_ts: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(models.DateLayout, s)
}

var timestampLayouts = []string{
	models.TimestampLayout,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
	models.DateLayout,
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
