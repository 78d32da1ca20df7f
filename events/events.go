// Package events turns finished forecast plans into message-bus envelopes
// and publishes them. It sits strictly downstream of the generator; publish
// failures never touch the in-memory dataset.
package events

import (
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/forecast"
	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// FromResult derives the full event stream for a generation run: one CREATE
// per record in final sorted order, then one UPDATE per adjusted row and one
// CANCEL per cancelled row, both carrying post-mutation values.
func FromResult(res *forecast.Result, ts time.Time) ([]models.ForecastEvent, error) {
	byID := make(map[string]*models.ForecastRecord, len(res.Records))
	events := make([]models.ForecastEvent, 0, len(res.Records)+len(res.UpdatedIDs)+len(res.CancelledIDs))

	for _, r := range res.Records {
		byID[r.ForecastID] = r
		events = append(events, models.NewForecastEvent(models.EventTypeCreate, r, ts))
	}
	for _, id := range res.UpdatedIDs {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("updated forecast %s not present in final dataset", id)
		}
		events = append(events, models.NewForecastEvent(models.EventTypeUpdate, r, ts))
	}
	for _, id := range res.CancelledIDs {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("cancelled forecast %s not present in final dataset", id)
		}
		events = append(events, models.NewForecastEvent(models.EventTypeCancel, r, ts))
	}
	return events, nil
}

// FromPlan replays an already-persisted plan file as events, one per row,
// with the event type inferred from the row's status.
func FromPlan(rows []*models.ForecastRecord, ts time.Time) []models.ForecastEvent {
	events := make([]models.ForecastEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, models.NewForecastEvent(models.EventTypeForStatus(r.Status), r, ts))
	}
	return events
}
