// Package vessel sizes the wall thickness of cylindrical pressure vessels
// with torispherical (Kloepper) end closures under internal pressure,
// following the allowable-stress method of EN 13445-3. It is intended for
// preliminary sizing by process and mechanical engineers, not for code-stamp
// certification.
//
// A design point is described by a Parameters value, constructed once from
// validated inputs, and evaluated by Design:
//
//	params, err := vessel.NewParameters(1200, 3000, 3.0, 100)
//	if err != nil { ... }
//	res, err := vessel.Design(params)
//
// All computations are pure and O(1); Parameters and Result are immutable
// and safe to share across goroutines.
package vessel

import (
	"errors"
	"fmt"

	"github.com/mlutz-eng/vesseldesign/geometry"
	"github.com/mlutz-eng/vesseldesign/internal/head"
	"github.com/mlutz-eng/vesseldesign/internal/plate"
	"github.com/mlutz-eng/vesseldesign/internal/shell"
	"github.com/mlutz-eng/vesseldesign/internal/table"
)

var (
	// ErrInvalidParameter reports a design input that violates its constraint.
	ErrInvalidParameter = errors.New("invalid design parameter")
	// ErrOutOfRange reports a table lookup (material stress or head shape
	// factor) outside its certified span. The tables are never extrapolated.
	ErrOutOfRange = errors.New("outside tabulated range")
	// ErrInfeasible reports a design point the shell formula cannot satisfy
	// at any wall thickness.
	ErrInfeasible = errors.New("design point infeasible")
	// ErrCapacityExceeded reports a required thickness beyond the largest
	// standard plate.
	ErrCapacityExceeded = errors.New("standard plate capacity exceeded")
)

// Result is the outcome of one vessel design computation. The required
// thicknesses include the corrosion allowance; the nominal thickness is the
// smallest standard plate at or above both.
type Result struct {
	params           *Parameters
	eShellRequiredMM float64
	eHeadRequiredMM  float64
	eNominalMM       float64
}

// Params returns the parameters the result was computed from.
func (r *Result) Params() *Parameters { return r.params }

// EShellRequiredMM is the required cylindrical-shell wall thickness in mm,
// corrosion allowance included.
func (r *Result) EShellRequiredMM() float64 { return r.eShellRequiredMM }

// EHeadRequiredMM is the required torispherical-head wall thickness in mm,
// corrosion allowance included.
func (r *Result) EHeadRequiredMM() float64 { return r.eHeadRequiredMM }

// ENominalMM is the selected standard plate thickness in mm.
func (r *Result) ENominalMM() float64 { return r.eNominalMM }

// StandardPlateSeries returns the standard plate thicknesses in mm that
// ENominalMM is selected from.
func StandardPlateSeries() []float64 { return plate.Series() }

// Design computes the required shell and head thicknesses for the design
// point described by p and selects the nominal plate. It is a pure function:
// identical parameters always produce an identical result.
func Design(p *Parameters) (*Result, error) {
	if p == nil || p.designStressMPa == 0 {
		return nil, fmt.Errorf("%w: parameters not constructed with NewParameters", ErrInvalidParameter)
	}

	eShell, err := shell.Required(p.DesignPressureMPa(), p.InnerDiameterMM(), p.DesignStressMPa(), p.JointEfficiency())
	if err != nil {
		if errors.Is(err, shell.ErrInfeasible) {
			return nil, fmt.Errorf("%w:%w", ErrInfeasible, err)
		}
		return nil, fmt.Errorf("%w:%w", ErrInvalidParameter, err)
	}

	// Crown and knuckle radii follow DIN 28011 Kloepper proportions; the
	// head diameter is approximated by the inner diameter for preliminary
	// sizing.
	geom := geometry.Kloepper(p.InnerDiameterMM())
	eHead, err := head.Required(p.DesignPressureMPa(), geom.CrownRadius(), geom.KnuckleRadius(), p.DesignStressMPa(), p.JointEfficiency())
	if err != nil {
		if errors.Is(err, table.ErrOutOfRange) {
			return nil, fmt.Errorf("%w:%w", ErrOutOfRange, err)
		}
		return nil, fmt.Errorf("%w:%w", ErrInvalidParameter, err)
	}

	shellReq, headReq, nominal, err := plate.Select(eShell, eHead, p.CorrosionAllowanceMM())
	if err != nil {
		if errors.Is(err, plate.ErrCapacityExceeded) {
			return nil, fmt.Errorf("%w:%w", ErrCapacityExceeded, err)
		}
		return nil, fmt.Errorf("%w:%w", ErrInvalidParameter, err)
	}

	return &Result{
		params:           p,
		eShellRequiredMM: shellReq,
		eHeadRequiredMM:  headReq,
		eNominalMM:       nominal,
	}, nil
}
