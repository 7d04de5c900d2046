// Package material holds the allowable design stress tables for the
// supported pressure-vessel plate materials.
//
// The set of grades is closed: adding a grade means adding a constant and a
// stress table here, never accepting an arbitrary designation string in the
// calculation core. ParseGrade exists for process boundaries (flags,
// spreadsheets) only.
package material

import (
	"fmt"

	"github.com/mlutz-eng/vesseldesign/internal/table"
)

// ErrOutOfRange reports a design temperature outside the certified span of a
// grade's stress table. Extrapolation is never performed: it would understate
// the required wall thickness.
var ErrOutOfRange = table.ErrOutOfRange

// Grade identifies a supported plate material.
type Grade uint8

const (
	// Grade14404 is austenitic stainless steel EN 1.4404 (X2CrNiMo17-12-2, AISI 316L).
	Grade14404 Grade = iota + 1
	// GradeP265GH is non-alloy pressure-vessel steel EN P265GH (1.0425).
	GradeP265GH
)

func (g Grade) String() string {
	switch g {
	case Grade14404:
		return "1.4404"
	case GradeP265GH:
		return "P265GH"
	}
	return fmt.Sprintf("Grade(%d)", uint8(g))
}

func (g Grade) Valid() bool {
	_, ok := stressTables[g]
	return ok
}

// ParseGrade maps an EN designation to a Grade.
func ParseGrade(s string) (Grade, error) {
	for g := range stressTables {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unsupported material grade %q", s)
}

// Grades lists all supported grades.
func Grades() []Grade {
	return []Grade{Grade14404, GradeP265GH}
}

// Nominal design stress f in MPa over design temperature in °C, simplified
// from EN 13445-3 for preliminary sizing. Breakpoints must be strictly
// increasing in temperature; table.Must enforces that at init.
var stressTables = map[Grade]*table.Table{
	Grade14404: table.Must(
		[]float64{20, 50, 100, 150, 200, 250, 300, 350, 400},
		[]float64{147, 132, 120, 113, 106, 100, 95, 92, 89},
	),
	GradeP265GH: table.Must(
		[]float64{20, 100, 150, 200, 250, 300},
		[]float64{176.7, 160.7, 148.7, 136.7, 125.3, 113.3},
	),
}

// DesignStress returns the allowable nominal design stress f in MPa for the
// grade at the given design temperature. Tabulated temperatures resolve to
// the tabulated stress exactly, temperatures strictly between two breakpoints
// are interpolated linearly, and temperatures outside the certified span fail
// with ErrOutOfRange.
func DesignStress(g Grade, tempC float64) (float64, error) {
	t, ok := stressTables[g]
	if !ok {
		return 0, fmt.Errorf("unsupported material grade %s", g)
	}
	f, err := t.At(tempC)
	if err != nil {
		return 0, fmt.Errorf("material %s: %w", g, err)
	}
	return f, nil
}

// TemperatureRange reports the certified design temperature span of a grade.
func TemperatureRange(g Grade) (minC, maxC float64, err error) {
	t, ok := stressTables[g]
	if !ok {
		return 0, 0, fmt.Errorf("unsupported material grade %s", g)
	}
	return t.Min(), t.Max(), nil
}
