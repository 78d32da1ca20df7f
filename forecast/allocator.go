package forecast

import (
	"fmt"
	"math/rand"
	"strings"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"github.com/google/uuid"
)

// IDAllocator hands out unique forecast identifiers for a single run.
// Sequential mode yields readable per-archetype codes (PAY-00001); UUID mode
// yields opaque ids drawn from the allocator's seeded stream so runs stay
// reproducible. The mode is fixed for the whole run. Counters live on the
// allocator, not in package state, so independent runs in one process never
// interfere.
type IDAllocator struct {
	mode     models.IDMode
	rng      *rand.Rand
	counters map[models.CashflowType]int
	dups     map[string]bool
}

func NewIDAllocator(mode models.IDMode, rng *rand.Rand) *IDAllocator {
	return &IDAllocator{
		mode:     mode,
		rng:      rng,
		counters: make(map[models.CashflowType]int),
		dups:     make(map[string]bool),
	}
}

// Next returns a fresh identifier for the archetype, never reused within the
// run.
func (a *IDAllocator) Next(t models.CashflowType) string {
	if a.mode == models.IDModeUUID {
		return uuid.Must(uuid.NewRandomFromReader(a.rng)).String()
	}
	a.counters[t]++
	return fmt.Sprintf("%s-%05d", idPrefix(t), a.counters[t])
}

// Duplicate returns the identifier for a shaping clone. The DUP tag keeps
// padded rows distinguishable from assembled ones regardless of id mode.
// Tags already issued this run are redrawn, so clones never reuse an id.
func (a *IDAllocator) Duplicate() string {
	for {
		id := fmt.Sprintf("DUP-%06x", a.rng.Intn(1<<24))
		if !a.dups[id] {
			a.dups[id] = true
			return id
		}
	}
}

func idPrefix(t models.CashflowType) string {
	s := string(t)
	if len(s) < 3 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:3])
}
