package forecast

import "math/rand"

// Fixed offsets keep each logical draw purpose on its own deterministic
// stream. Assembly, shaping, update selection and cancel selection must not
// share a sequence, otherwise resizing one stage would silently reshuffle
// the others.
const (
	streamAssemble = iota
	streamShape
	streamUpdate
	streamCancel
	streamID
)

type randSet struct {
	assemble *rand.Rand
	shape    *rand.Rand
	update   *rand.Rand
	cancel   *rand.Rand
	id       *rand.Rand
}

func newRandSet(seed int64) *randSet {
	return &randSet{
		assemble: rand.New(rand.NewSource(seed + streamAssemble)),
		shape:    rand.New(rand.NewSource(seed + streamShape)),
		update:   rand.New(rand.NewSource(seed + streamUpdate)),
		cancel:   rand.New(rand.NewSource(seed + streamCancel)),
		id:       rand.New(rand.NewSource(seed + streamID)),
	}
}

// randIntRange returns a uniform integer in [lo, hi], both inclusive.
func randIntRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// sampleStrings picks n distinct elements without replacement, preserving
// draw order. n must not exceed len(list).
func sampleStrings(rng *rand.Rand, list []string, n int) []string {
	idx := rng.Perm(len(list))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}

func choiceString(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}
