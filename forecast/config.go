package forecast

import (
	"errors"
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// Config describes one generation run. Every randomized decision is derived
// from Seed, so a fixed Config reproduces the same plan byte for byte.
type Config struct {
	StartDate   time.Time
	EndDate     time.Time
	BusinessIDs []string
	TargetRows  int
	UpdateRate  float64
	CancelRate  float64
	IDMode      models.IDMode
	Currency    string
	Scenario    string
	Seed        int64

	// GeneratedAt stamps ingest_ts and mutation updated_at. Zero means
	// time.Now().UTC() at run start.
	GeneratedAt time.Time
}

// BusinessIDs returns n identifiers of the form BIZ-001..BIZ-nnn.
func BusinessIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, fmt.Sprintf("BIZ-%03d", i))
	}
	return ids
}

// DefaultConfig mirrors the base simulation scenario.
func DefaultConfig() Config {
	return Config{
		StartDate:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		BusinessIDs: BusinessIDs(3),
		TargetRows:  500,
		UpdateRate:  0.10,
		CancelRate:  0.03,
		IDMode:      models.IDModeSequential,
		Currency:    "USD",
		Scenario:    "base",
		Seed:        42,
	}
}

// Validate rejects configurations eagerly, before any generation work, so a
// bad run never produces a partially-invalid dataset.
func (c *Config) Validate() error {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return errors.New("config: start and end dates are required")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("config: end date %s precedes start date %s",
			c.EndDate.Format(models.DateLayout), c.StartDate.Format(models.DateLayout))
	}
	if len(c.BusinessIDs) == 0 {
		return errors.New("config: at least one business id is required")
	}
	if c.TargetRows <= 0 {
		return fmt.Errorf("config: target rows must be positive, got %d", c.TargetRows)
	}
	if c.UpdateRate < 0 || c.UpdateRate > 1 {
		return fmt.Errorf("config: update rate %v outside [0,1]", c.UpdateRate)
	}
	if c.CancelRate < 0 || c.CancelRate > 1 {
		return fmt.Errorf("config: cancel rate %v outside [0,1]", c.CancelRate)
	}
	if c.UpdateRate+c.CancelRate > 1 {
		return fmt.Errorf("config: update rate %v + cancel rate %v exceeds 1.0", c.UpdateRate, c.CancelRate)
	}
	if c.IDMode != models.IDModeSequential && c.IDMode != models.IDModeUUID {
		return fmt.Errorf("config: invalid id mode %q", c.IDMode)
	}
	if c.Currency == "" {
		return errors.New("config: currency is required")
	}
	return nil
}

func (c *Config) generatedAt() time.Time {
	if c.GeneratedAt.IsZero() {
		return time.Now().UTC()
	}
	return c.GeneratedAt
}
