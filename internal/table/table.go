// Package table provides sorted-breakpoint lookup with linear interpolation.
// It backs both the material stress tables and the head shape-factor table so
// that both share identical boundary and interpolation semantics.
package table

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

var ErrOutOfRange = errors.New("value outside tabulated range")

// Table maps a scalar onto tabulated breakpoints. Values exactly on a
// breakpoint are returned as tabulated, values strictly between two
// breakpoints are interpolated linearly, and values outside the tabulated
// span fail with ErrOutOfRange. A Table is immutable after New and safe for
// concurrent lookups.
type Table struct {
	pl       interp.PiecewiseLinear
	min, max float64
}

func New(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("breakpoint mismatch: %d x-values, %d y-values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 breakpoints, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("breakpoints not strictly increasing at index %d: %g after %g", i, xs[i], xs[i-1])
		}
	}
	t := &Table{min: xs[0], max: xs[len(xs)-1]}
	if err := t.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return t, nil
}

// Must is for tables built from static literals at package init.
func Must(xs, ys []float64) *Table {
	t, err := New(xs, ys)
	if err != nil {
		panic(err)
	}
	return t
}

// At looks x up in the table. Extrapolation is never performed; both span
// boundaries are inclusive.
func (t *Table) At(x float64) (float64, error) {
	if !(x >= t.min && x <= t.max) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, x, t.min, t.max)
	}
	return t.pl.Predict(x), nil
}

// Min returns the lowest tabulated breakpoint.
func (t *Table) Min() float64 { return t.min }

// Max returns the highest tabulated breakpoint.
func (t *Table) Max() float64 { return t.max }
