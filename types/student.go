package types

// Student is one roster entry with its mutable selection state.
//
// Name is the external identity: it is what roster files key on and what
// the spin strip displays. The model itself does not enforce uniqueness.
//
// Weight is the student's relative likelihood of being picked. It starts
// at the configured default, decreases by the decay amount on every
// selection, and is clamped at zero. A student with zero weight is never
// selected again until an explicit weight reset.
//
// Count is the number of times the student has been selected since the
// last full reset.
type Student struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
	Count  int     `json:"count" yaml:"count"`
}
