// Package stats owns the player attribute vector shown on Golear profiles.
//
// A vector holds one integer score per Attribute. Two invariants hold for
// every vector produced by an Allocator:
//
//   - every score lies in [0, PerAttributeMax]
//   - the sum of all scores never exceeds TotalCap
//
// Vectors are values: every operation returns a fresh slice and leaves its
// input untouched, so callers can keep the previous vector for undo or
// comparison.
package stats

// Default bounds observed on player profiles.
const (
	PerAttributeMax = 10
	TotalCap        = 45
)

// Attribute identifies one slot of the vector.
type Attribute int

const (
	Speed Attribute = iota
	Strength
	Technique
	Passing
	Defense
	Finishing
)

// Count is the fixed vector length.
const Count = int(Finishing) + 1

// Attributes lists every attribute in display order.
var Attributes = []Attribute{Speed, Strength, Technique, Passing, Defense, Finishing}

var labels = [Count]string{
	"Velocidade",
	"Força",
	"Técnica",
	"Passe",
	"Defesa",
	"Finalização",
}

var keys = [Count]string{
	"speed",
	"strength",
	"technique",
	"passing",
	"defense",
	"finishing",
}

// Label returns the profile label shown next to the score.
func (a Attribute) Label() string {
	if a < 0 || int(a) >= Count {
		return ""
	}
	return labels[a]
}

// Key returns the stable form/catalog key for the attribute.
func (a Attribute) Key() string {
	if a < 0 || int(a) >= Count {
		return ""
	}
	return keys[a]
}

// Vector is an ordered list of attribute scores.
type Vector []int

// New returns an all-zero vector, the state of a profile that was never edited.
func New() Vector {
	return make(Vector, Count)
}

// Normalize coerces remote data into a vector of Count entries.
//
// Missing entries and nil values become zero and extra entries are dropped.
// Scores are not clamped here: out-of-bounds data stays visible so the
// allocator can floor it on the next change.
func Normalize(values []*int) Vector {
	out := New()
	for i := 0; i < Count && i < len(values); i++ {
		if values[i] != nil {
			out[i] = *values[i]
		}
	}
	return out
}

// Sum totals the vector.
func Sum(v Vector) int {
	total := 0
	for _, score := range v {
		total += score
	}
	return total
}

// Clone copies v.
func Clone(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
