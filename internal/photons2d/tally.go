package photons2d

import "sync/atomic"

// Outcome is what happened to a photon at one interaction.
type Outcome uint8

const (
	Absorbed    Outcome = iota // ray absorbed by a wall
	Diffused                   // re-emitted isotropically
	Reflected                  // mirrored about the wall normal
	Transmitted                // passed straight through
	Escaped                    // no wall ahead; dropped without deposit
	BounceLimit                // stopped by MaxBounces
	numOutcomes
)

var outcomeNames = [numOutcomes]string{"absorbed", "diffused", "reflected", "transmitted", "escaped", "bounce_limit"}

func (o Outcome) String() string {
	if o < numOutcomes {
		return outcomeNames[o]
	}
	return "unknown"
}

// Tally counts interaction outcomes across all workers.
type Tally struct {
	n [numOutcomes]atomic.Int64
}

func (t *Tally) add(o Outcome) { t.n[o].Add(1) }

// Count returns how many interactions ended in o.
func (t *Tally) Count(o Outcome) int64 {
	if o >= numOutcomes {
		return 0
	}
	return t.n[o].Load()
}

// Interactions returns the number of wall hits. Escaped and BounceLimit
// end a path without a hit of their own and are not included.
func (t *Tally) Interactions() int64 {
	var n int64
	for o := Absorbed; o <= Transmitted; o++ {
		n += t.n[o].Load()
	}
	return n
}

// Counts returns every outcome count keyed by its name.
func (t *Tally) Counts() map[string]int64 {
	m := make(map[string]int64, numOutcomes)
	for o := Outcome(0); o < numOutcomes; o++ {
		m[o.String()] = t.n[o].Load()
	}
	return m
}

func (t *Tally) reset() {
	for i := range t.n {
		t.n[i].Store(0)
	}
}
