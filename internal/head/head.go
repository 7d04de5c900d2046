// Package head computes the minimum wall thickness of a torispherical end
// closure under internal pressure (EN 13445-3).
package head

import (
	"fmt"

	"github.com/mlutz-eng/vesseldesign/internal/table"
)

// Shape factor beta over the crown-to-knuckle radius ratio R/r, from the
// published torispherical stress-intensification table. The breakpoints
// coincide with beta = (3 + sqrt(R/r)) / 4. Standard Kloepper proportions
// (r = 0.1*R) sit at R/r = 10.
var shapeFactors = table.Must(
	[]float64{
		1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5, 5.5, 6, 6.5, 7, 7.5,
		8, 8.5, 9, 9.5, 10, 10.5, 11, 11.5, 12, 13, 14, 15, 16, 16.67,
	},
	[]float64{
		1.00, 1.06, 1.10, 1.15, 1.18, 1.22, 1.25, 1.28, 1.31, 1.34, 1.36, 1.39, 1.41, 1.44,
		1.46, 1.48, 1.50, 1.52, 1.54, 1.56, 1.58, 1.60, 1.62, 1.65, 1.69, 1.72, 1.75, 1.77,
	},
)

// ShapeFactor returns beta for a crown-to-knuckle radius ratio R/r. Ratios
// outside the published table fail with table.ErrOutOfRange rather than
// extrapolate.
func ShapeFactor(ratio float64) (float64, error) {
	beta, err := shapeFactors.At(ratio)
	if err != nil {
		return 0, fmt.Errorf("shape factor: %w", err)
	}
	return beta, nil
}

// Required returns the minimum head wall thickness in mm, before any
// corrosion allowance:
//
//	e = beta * P * R / (2*f*z)
//
// with P the design pressure in MPa, R the crown radius in mm, f the
// allowable design stress in MPa and z the joint efficiency. The knuckle
// radius enters through the shape factor. Unlike the shell formula the
// denominator is always positive, so the only lookup failure mode is a
// radius ratio outside the shape-factor table.
func Required(pMPa, crownRadiusMM, knuckleRadiusMM, fMPa, z float64) (float64, error) {
	switch {
	case !(pMPa > 0):
		return 0, fmt.Errorf("design pressure must be positive, got %g MPa", pMPa)
	case !(crownRadiusMM > 0):
		return 0, fmt.Errorf("crown radius must be positive, got %g mm", crownRadiusMM)
	case !(knuckleRadiusMM > 0):
		return 0, fmt.Errorf("knuckle radius must be positive, got %g mm", knuckleRadiusMM)
	case !(fMPa > 0):
		return 0, fmt.Errorf("design stress must be positive, got %g MPa", fMPa)
	case !(z > 0 && z <= 1):
		return 0, fmt.Errorf("joint efficiency must be in (0, 1], got %g", z)
	}
	beta, err := ShapeFactor(crownRadiusMM / knuckleRadiusMM)
	if err != nil {
		return 0, err
	}
	return beta * pMPa * crownRadiusMM / (2 * fMPa * z), nil
}
