// Package memcell provides a generic value holder that remembers the value it
// held immediately before the last update.
//
// A MemoryCell always has a current value; it gains a previous value the
// first time it is updated. Exactly one generation of history is kept: each
// update overwrites whatever the previous slot held.
//
// The cell is a plain value holder. It performs no synchronization; callers
// that share a cell across goroutines must provide their own.
package memcell

import "fmt"

// MemoryCell holds a current value and, once updated, the value it held
// immediately before.
type MemoryCell[T any] struct {
	current     T
	previous    T
	hasPrevious bool
}

// New creates a cell holding value, with no previous value.
func New[T any](value T) *MemoryCell[T] {
	return &MemoryCell[T]{current: value}
}

// NewWithPrevious creates a cell holding current that behaves as if it had
// already been updated once from previous.
func NewWithPrevious[T any](current, previous T) *MemoryCell[T] {
	return &MemoryCell[T]{current: current, previous: previous, hasPrevious: true}
}

// Current returns the value the cell presently holds.
func (c *MemoryCell[T]) Current() T {
	return c.current
}

// Previous returns the value displaced by the most recent update. The second
// return is false, and the first is the zero value of T, if the cell has
// never been updated.
func (c *MemoryCell[T]) Previous() (T, bool) {
	if !c.hasPrevious {
		var zero T
		return zero, false
	}

	return c.previous, true
}

// HasPrevious reports whether the cell holds a previous value.
func (c *MemoryCell[T]) HasPrevious() bool {
	return c.hasPrevious
}

// Update moves the current value into the previous slot, releasing whatever
// that slot held, and installs value as the new current value. It returns
// nothing; callers that want the displaced value read Previous afterward.
func (c *MemoryCell[T]) Update(value T) {
	c.previous = c.current
	c.hasPrevious = true
	c.current = value
}

// Swap exchanges the current and previous values and reports whether the
// exchange happened. A cell with no previous value is left unchanged and
// Swap returns false.
func (c *MemoryCell[T]) Swap() bool {
	if !c.hasPrevious {
		return false
	}

	c.current, c.previous = c.previous, c.current

	return true
}

// Reset reinitializes the cell as if it had just been constructed with
// value, discarding any previous value.
func (c *MemoryCell[T]) Reset(value T) {
	var zero T

	c.current = value
	c.previous = zero
	c.hasPrevious = false
}

// TakeCurrent reads out the current value. The cell is not modified; Go has
// no move semantics, so "taking" is reading.
func (c *MemoryCell[T]) TakeCurrent() T {
	return c.current
}

// TakePrevious reads out the previous value, with the same absent-value
// signaling as Previous.
func (c *MemoryCell[T]) TakePrevious() (T, bool) {
	return c.Previous()
}

// TakeBoth reads out the current and previous values together. ok is false
// if the cell has never been updated, in which case previous is the zero
// value of T.
func (c *MemoryCell[T]) TakeBoth() (current, previous T, ok bool) {
	previous, ok = c.Previous()
	return c.current, previous, ok
}

// Clone returns an independent copy of the cell. The fields are copied by
// assignment; if T itself holds references, use CloneFunc to copy what they
// point at.
func (c *MemoryCell[T]) Clone() *MemoryCell[T] {
	clone := *c
	return &clone
}

// CloneFunc returns an independent copy of the cell, duplicating each held
// value with copyFn.
func (c *MemoryCell[T]) CloneFunc(copyFn func(T) T) *MemoryCell[T] {
	clone := &MemoryCell[T]{current: copyFn(c.current), hasPrevious: c.hasPrevious}
	if c.hasPrevious {
		clone.previous = copyFn(c.previous)
	}

	return clone
}

// String formats the cell for debugging. It requires nothing of T beyond
// what the fmt package's %v verb can render.
func (c *MemoryCell[T]) String() string {
	if !c.hasPrevious {
		return fmt.Sprintf("MemoryCell(current: %v)", c.current)
	}

	return fmt.Sprintf("MemoryCell(current: %v, previous: %v)", c.current, c.previous)
}

// Equal reports whether two cells hold equal current values and agree on
// their previous values. Two nil cells are equal; a nil cell equals nothing
// else. It is a function rather than a method because methods cannot add
// the comparable constraint.
func Equal[T comparable](a, b *MemoryCell[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied comparator, for element types
// that are not comparable.
func EqualFunc[T any](a, b *MemoryCell[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	if !eq(a.current, b.current) {
		return false
	}

	if a.hasPrevious != b.hasPrevious {
		return false
	}

	return !a.hasPrevious || eq(a.previous, b.previous)
}
