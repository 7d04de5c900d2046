// Package shell computes the minimum wall thickness of a cylindrical shell
// under internal pressure (EN 13445-3).
package shell

import (
	"errors"
	"fmt"
)

// ErrInfeasible reports a design point the shell formula cannot satisfy at
// any wall thickness: the allowable membrane stress is used up by the
// pressure itself. Raising the material grade, lowering the pressure or
// improving the joint efficiency is required.
var ErrInfeasible = errors.New("shell design infeasible")

// Required returns the minimum shell wall thickness in mm, before any
// corrosion allowance:
//
//	e = P * Di / (2*f*z - P)
//
// with P the design pressure in MPa, Di the inner diameter in mm, f the
// allowable design stress in MPa and z the joint efficiency.
func Required(pMPa, innerDiameterMM, fMPa, z float64) (float64, error) {
	switch {
	case !(pMPa > 0):
		return 0, fmt.Errorf("design pressure must be positive, got %g MPa", pMPa)
	case !(innerDiameterMM > 0):
		return 0, fmt.Errorf("inner diameter must be positive, got %g mm", innerDiameterMM)
	case !(z > 0 && z <= 1):
		return 0, fmt.Errorf("joint efficiency must be in (0, 1], got %g", z)
	}
	denom := 2*fMPa*z - pMPa
	if denom <= 0 {
		return 0, fmt.Errorf("%w: 2*f*z = %g MPa does not exceed P = %g MPa", ErrInfeasible, 2*fMPa*z, pMPa)
	}
	return pMPa * innerDiameterMM / denom, nil
}
