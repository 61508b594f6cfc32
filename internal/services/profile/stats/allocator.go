package stats

// Allocator enforces per-attribute bounds and a global cap on a vector.
type Allocator struct {
	PerAttributeMax int
	TotalCap        int
}

// Default is the allocator used by the profile editor.
var Default = Allocator{PerAttributeMax: PerAttributeMax, TotalCap: TotalCap}

// ApplyChange applies a single interactive edit using Default.
func ApplyChange(v Vector, index int, attempted int) Vector {
	return Default.ApplyChange(v, index, attempted)
}

// ApplyChange returns a copy of v with v[index] set to the closest accepted
// value to attempted.
//
// The value is first clamped to [0, PerAttributeMax]. If it still exceeds the
// headroom left by the other attributes it saturates at that headroom, floored
// at zero when external data already broke the cap. An index outside the
// vector returns an unchanged copy.
func (a Allocator) ApplyChange(v Vector, index int, attempted int) Vector {
	out := Clone(v)
	if index < 0 || index >= len(out) {
		return out
	}

	value := a.clamp(attempted)
	available := a.TotalCap - (Sum(v) - v[index])
	if value > available {
		value = a.clamp(available)
	}
	out[index] = value
	return out
}

// ApplyAll returns proposed unchanged when it is a complete valid vector.
// Otherwise it walks proposed in index order, feeding each value through
// ApplyChange starting from current. Earlier attributes win when the proposed
// total exceeds the cap, matching a user editing the form top to bottom.
func (a Allocator) ApplyAll(current Vector, proposed Vector) Vector {
	if len(proposed) == len(current) && a.Valid(proposed) {
		return Clone(proposed)
	}
	out := Clone(current)
	for i := 0; i < len(out) && i < len(proposed); i++ {
		out = a.ApplyChange(out, i, proposed[i])
	}
	return out
}

// Remaining returns the points still available under the cap.
func (a Allocator) Remaining(v Vector) int {
	return a.TotalCap - Sum(v)
}

// Valid reports whether v satisfies both invariants.
func (a Allocator) Valid(v Vector) bool {
	for _, score := range v {
		if score < 0 || score > a.PerAttributeMax {
			return false
		}
	}
	return Sum(v) <= a.TotalCap
}

func (a Allocator) clamp(value int) int {
	return max(0, min(a.PerAttributeMax, value))
}
