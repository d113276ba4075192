package model

// Optional marks whether a partial-update field was supplied. A zero
// Optional leaves the stored value untouched.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a supplied Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Apply overwrites *dst when the field was supplied.
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}
