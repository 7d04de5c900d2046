package vessel

import (
	"fmt"

	"github.com/mlutz-eng/vesseldesign/material"
)

type Option func(*Parameters) error

// WithMaterial selects the plate material grade. The default is stainless
// 1.4404.
func WithMaterial(g material.Grade) Option {
	return func(p *Parameters) error {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown material grade %s", ErrInvalidParameter, g)
		}
		p.grade = g
		return nil
	}
}

// WithJointEfficiency sets the weld joint coefficient z in (0, 1]. 1.0
// corresponds to a fully radiographed full-penetration weld; lower inspection
// classes derate it.
func WithJointEfficiency(z float64) Option {
	return func(p *Parameters) error {
		if !(z > 0 && z <= 1) {
			return fmt.Errorf("%w: joint efficiency must be in (0, 1], got %g", ErrInvalidParameter, z)
		}
		p.jointEfficiency = z
		return nil
	}
}

// WithCorrosionAllowance adds a constant wall thickness in mm to both
// required thicknesses, compensating expected material loss over the service
// life.
func WithCorrosionAllowance(mm float64) Option {
	return func(p *Parameters) error {
		if !(mm >= 0) {
			return fmt.Errorf("%w: corrosion allowance must not be negative, got %g mm", ErrInvalidParameter, mm)
		}
		p.corrosionAllowanceMM = mm
		return nil
	}
}
