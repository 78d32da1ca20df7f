package forecast

import (
	"fmt"
	"sort"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// Result is the engine's sole output: the finished plan plus the mutation
// membership the event boundary needs.
type Result struct {
	Records      []*models.ForecastRecord
	UpdatedIDs   []string
	CancelledIDs []string
}

// Generate runs the whole pipeline: validate, assemble, shape to the exact
// target count, mutate, and globally sort by (business_id, due_date,
// forecast_id). Data flows strictly downward; no stage re-enters an earlier
// one.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	now := cfg.generatedAt()
	rs := newRandSet(cfg.Seed)
	alloc := NewIDAllocator(cfg.IDMode, rs.id)

	rows := NewAssembler(&cfg, alloc, rs.assemble, now).Build()
	rows = Shape(rows, cfg.TargetRows, rs.shape, alloc)
	mut := Mutate(rows, cfg.UpdateRate, cfg.CancelRate, rs.update, rs.cancel, now)
	sortRecords(rows)

	return &Result{
		Records:      rows,
		UpdatedIDs:   mut.UpdatedIDs,
		CancelledIDs: mut.CancelledIDs,
	}, nil
}

func sortRecords(rows []*models.ForecastRecord) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.BusinessID != b.BusinessID {
			return a.BusinessID < b.BusinessID
		}
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return a.ForecastID < b.ForecastID
	})
}
