package types

// FieldState distinguishes the three ways a board field can be absent
// or present. A field whose mapping does not exist for the deployment
// is Unconfigured; a mapped field whose cell is missing or blank is
// Empty; otherwise it is Set. The distinction is carried all the way
// through validation and must never collapse to a plain optional.
type FieldState int

// FieldState values.
const (
	FieldUnconfigured FieldState = iota
	FieldEmpty
	FieldSet
)

// Opt is a tri-state optional field value.
type Opt[T any] struct {
	State FieldState
	Value T
}

// Unconfigured returns an Opt for a field with no column mapping.
func Unconfigured[T any]() Opt[T] { return Opt[T]{State: FieldUnconfigured} }

// Empty returns an Opt for a mapped field with a blank stored value.
func Empty[T any]() Opt[T] { return Opt[T]{State: FieldEmpty} }

// Set returns an Opt carrying a value.
func Set[T any](v T) Opt[T] { return Opt[T]{State: FieldSet, Value: v} }

// IsSet reports whether the field carries a value.
func (o Opt[T]) IsSet() bool { return o.State == FieldSet }

// Configured reports whether the field's mapping exists at all,
// regardless of whether a value is stored.
func (o Opt[T]) Configured() bool { return o.State != FieldUnconfigured }

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) { return o.Value, o.State == FieldSet }

// Or returns the value when set, otherwise the fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.State == FieldSet {
		return o.Value
	}
	return fallback
}
