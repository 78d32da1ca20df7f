package forecast

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/shopspring/decimal"
)

func fakeRows(n int) []*models.ForecastRecord {
	rows := make([]*models.ForecastRecord, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, &models.ForecastRecord{
			ForecastID:   fmt.Sprintf("OTH-%05d", i+1),
			BusinessID:   fmt.Sprintf("BIZ-%03d", i%3+1),
			CashflowType: models.CashflowTypeOther,
			Amount:       decimal.NewFromInt(int64(100 + i)),
			DueDate:      date(2025, 8, 1).AddDate(0, 0, i%180),
			CreatedAt:    date(2025, 7, 1),
			UpdatedAt:    date(2025, 7, 1),
			Status:       models.ForecastStatusPlanned,
			Probability:  0.9,
		})
	}
	return rows
}

func TestShape_DownsamplesToTarget(t *testing.T) {
	rows := fakeRows(100)
	got := Shape(rows, 40, rand.New(rand.NewSource(1)), NewIDAllocator(models.IDModeSequential, rand.New(rand.NewSource(1))))

	if len(got) != 40 {
		t.Fatalf("expected 40 rows, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, r := range got {
		if seen[r.ForecastID] {
			t.Fatalf("row %s sampled twice", r.ForecastID)
		}
		seen[r.ForecastID] = true
	}
}

func TestShape_PadsWithPerturbedClones(t *testing.T) {
	rows := fakeRows(10)
	alloc := NewIDAllocator(models.IDModeSequential, rand.New(rand.NewSource(2)))
	got := Shape(rows, 25, rand.New(rand.NewSource(2)), alloc)

	if len(got) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(got))
	}
	// The first 10 are the originals, untouched.
	for i, r := range got[:10] {
		if r != rows[i] {
			t.Fatalf("original row %d was replaced", i)
		}
	}
	byID := map[string]*models.ForecastRecord{}
	for _, r := range rows {
		byID[r.ForecastID] = r
	}
	for _, clone := range got[10:] {
		if !strings.HasPrefix(clone.ForecastID, "DUP-") {
			t.Fatalf("clone id %q lacks DUP tag", clone.ForecastID)
		}
		// Everything except id and created_at is copied from some source row.
		var src *models.ForecastRecord
		for _, orig := range rows {
			if orig.Amount.Equal(clone.Amount) {
				src = orig
				break
			}
		}
		if src == nil {
			t.Fatalf("clone %s matches no source row", clone.ForecastID)
		}
		if !clone.DueDate.Equal(src.DueDate) || clone.Status != src.Status {
			t.Fatalf("clone %s altered copied fields", clone.ForecastID)
		}
		days := int(src.CreatedAt.Sub(clone.CreatedAt).Hours() / 24)
		if days < 1 || days > 5 {
			t.Fatalf("clone %s created_at shifted %d days, want 1-5 earlier", clone.ForecastID, days)
		}
	}
}

func TestShape_ExactCountIsUntouched(t *testing.T) {
	rows := fakeRows(30)
	got := Shape(rows, 30, rand.New(rand.NewSource(3)), NewIDAllocator(models.IDModeSequential, rand.New(rand.NewSource(3))))

	if len(got) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(got))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d changed despite exact candidate count", i)
		}
	}
}
