// Package plate selects the nominal wall thickness from the standard plate
// series.
package plate

import (
	"errors"
	"fmt"
	"math"
)

// ErrCapacityExceeded reports a governing required thickness beyond the
// largest standard plate. It is never silently truncated to the largest
// entry.
var ErrCapacityExceeded = errors.New("standard plate series exceeded")

// Standard plate thicknesses in mm, ascending.
var series = []float64{2, 3, 4, 5, 6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 30, 32, 36, 40}

// Series returns a copy of the standard thickness series.
func Series() []float64 {
	s := make([]float64, len(series))
	copy(s, series)
	return s
}

// Select adds the corrosion allowance to each raw required thickness, takes
// the governing maximum and picks the smallest standard plate at or above it.
// A governing value exactly on a series entry selects that entry.
func Select(eShellMM, eHeadMM, allowanceMM float64) (shellReqMM, headReqMM, nominalMM float64, err error) {
	if !(allowanceMM >= 0) {
		return 0, 0, 0, fmt.Errorf("corrosion allowance must not be negative, got %g mm", allowanceMM)
	}
	shellReqMM = eShellMM + allowanceMM
	headReqMM = eHeadMM + allowanceMM
	governing := math.Max(shellReqMM, headReqMM)
	for _, s := range series {
		if s >= governing {
			return shellReqMM, headReqMM, s, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: required %.2f mm exceeds largest standard plate %g mm",
		ErrCapacityExceeded, governing, series[len(series)-1])
}
