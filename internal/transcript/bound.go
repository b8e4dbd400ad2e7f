// Package transcript holds the bounded-transcript policy: a session's
// message list grows freely until it crosses a hard cap, at which point it
// is cut back to the most recent retain-count entries. The cap is a document
// size bound, not a per-exchange sliding window.
package transcript

// Default policy values for consultation sessions.
const (
	DefaultCap    = 200
	DefaultRetain = 150
)

type Bound struct {
	Cap    int
	Retain int
}

func DefaultBound() Bound {
	return Bound{Cap: DefaultCap, Retain: DefaultRetain}
}

// Excess reports how many oldest entries must be dropped for the given
// count. It is zero until count exceeds the cap; past the cap it is the
// number that brings the transcript down to exactly Retain entries.
func (b Bound) Excess(count int) int {
	if count <= b.Cap {
		return 0
	}
	return count - b.Retain
}

// Trim applies the policy to an in-memory slice, keeping the most recent
// entries in their original relative order.
func Trim[T any](b Bound, entries []T) []T {
	drop := b.Excess(len(entries))
	if drop <= 0 {
		return entries
	}
	return entries[drop:]
}
