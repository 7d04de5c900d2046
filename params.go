package vessel

import (
	"errors"
	"fmt"

	"github.com/mlutz-eng/vesseldesign/material"
)

// Parameters is the validated, immutable description of one vessel design
// point. Construct it with NewParameters; for a different design point,
// construct a new value instead of mutating. The allowable design stress f
// is resolved from the material stress table once at construction and cached
// for the lifetime of the value.
type Parameters struct {
	innerDiameterMM      float64
	lengthMM             float64
	designPressureBar    float64
	designTemperatureC   float64
	grade                material.Grade
	jointEfficiency      float64
	corrosionAllowanceMM float64
	designStressMPa      float64
}

// NewParameters validates the design inputs, applies the options and resolves
// the allowable design stress. Inner diameter and cylindrical length are in
// mm, design pressure in bar (gauge), design temperature in degrees Celsius.
// Material grade, joint efficiency and corrosion allowance default to
// stainless 1.4404, 1.0 (full-penetration weld, fully radiographed) and 0 mm.
//
// Construction fails with ErrInvalidParameter on a constraint violation, with
// ErrOutOfRange when the design temperature lies outside the material's
// certified table, and with ErrInfeasible when the allowable stress cannot
// carry the design pressure at all.
func NewParameters(innerDiameterMM, lengthMM, designPressureBar, designTemperatureC float64, opts ...Option) (*Parameters, error) {
	p := &Parameters{
		innerDiameterMM:    innerDiameterMM,
		lengthMM:           lengthMM,
		designPressureBar:  designPressureBar,
		designTemperatureC: designTemperatureC,
		grade:              material.Grade14404,
		jointEfficiency:    1.0,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	switch {
	case !(p.innerDiameterMM > 0):
		return nil, fmt.Errorf("%w: inner diameter must be positive, got %g mm", ErrInvalidParameter, p.innerDiameterMM)
	case !(p.lengthMM > 0):
		return nil, fmt.Errorf("%w: cylindrical length must be positive, got %g mm", ErrInvalidParameter, p.lengthMM)
	case !(p.designPressureBar > 0):
		return nil, fmt.Errorf("%w: design pressure must be positive, got %g bar", ErrInvalidParameter, p.designPressureBar)
	}

	f, err := material.DesignStress(p.grade, p.designTemperatureC)
	if err != nil {
		if errors.Is(err, material.ErrOutOfRange) {
			return nil, fmt.Errorf("%w:%w", ErrOutOfRange, err)
		}
		return nil, fmt.Errorf("%w:%w", ErrInvalidParameter, err)
	}
	p.designStressMPa = f

	// The shell formula denominator 2*f*z - P must stay positive, otherwise
	// no wall thickness can carry the pressure.
	if 2*f*p.jointEfficiency-p.DesignPressureMPa() <= 0 {
		return nil, fmt.Errorf("%w: allowable stress %g MPa at joint efficiency %g cannot carry %g MPa",
			ErrInfeasible, f, p.jointEfficiency, p.DesignPressureMPa())
	}
	return p, nil
}

// InnerDiameterMM is the inner diameter D_i in mm.
func (p *Parameters) InnerDiameterMM() float64 { return p.innerDiameterMM }

// LengthMM is the cylindrical shell length L in mm. It is carried for
// reporting; the thickness formulas do not use it.
func (p *Parameters) LengthMM() float64 { return p.lengthMM }

// DesignPressureBar is the design pressure as entered, in bar.
func (p *Parameters) DesignPressureBar() float64 { return p.designPressureBar }

// DesignPressureMPa is the design pressure converted to MPa (N/mm2).
func (p *Parameters) DesignPressureMPa() float64 { return p.designPressureBar * 0.1 }

// DesignTemperatureC is the design temperature in degrees Celsius.
func (p *Parameters) DesignTemperatureC() float64 { return p.designTemperatureC }

// Material is the plate material grade.
func (p *Parameters) Material() material.Grade { return p.grade }

// JointEfficiency is the weld joint coefficient z.
func (p *Parameters) JointEfficiency() float64 { return p.jointEfficiency }

// CorrosionAllowanceMM is the additive corrosion allowance in mm.
func (p *Parameters) CorrosionAllowanceMM() float64 { return p.corrosionAllowanceMM }

// DesignStressMPa is the allowable nominal design stress f in MPa, resolved
// from the material table at construction.
func (p *Parameters) DesignStressMPa() float64 { return p.designStressMPa }
