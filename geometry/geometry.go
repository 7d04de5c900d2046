// Package geometry models the shape of torispherical vessel heads: a
// spherical crown joined to a toroidal knuckle that lands on the cylindrical
// shell. It covers the two standardized proportions, Kloepperboden
// (DIN 28011) and Korbbogenboden (DIN 28013).
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Torispherical describes a dished head. The crown radius r1 and knuckle
// radius r2 are tied to the head diameter Da by the factors Alpha1 = r1/Da
// and Alpha2 = r2/Da. The zero value is not usable; construct with Kloepper,
// Korbbogen or a struct literal with 0 < Alpha2 < Alpha1.
type Torispherical struct {
	Diameter float64 // head diameter Da in mm
	Alpha1   float64 // crown radius factor r1/Da
	Alpha2   float64 // knuckle radius factor r2/Da
}

// Kloepper returns standard Kloepper proportions: r1 = Da, r2 = 0.1*Da.
func Kloepper(diameter float64) Torispherical {
	return Torispherical{Diameter: diameter, Alpha1: 1.0, Alpha2: 0.1}
}

// Korbbogen returns deep-dished Korbbogen proportions: r1 = 0.8*Da, r2 = 0.154*Da.
func Korbbogen(diameter float64) Torispherical {
	return Torispherical{Diameter: diameter, Alpha1: 0.8, Alpha2: 0.154}
}

func (t Torispherical) CrownRadius() float64   { return t.Alpha1 * t.Diameter }
func (t Torispherical) KnuckleRadius() float64 { return t.Alpha2 * t.Diameter }

// SinTheta is the sine of the transition angle, derived from the geometric
// equilibrium Da/2 = r1*sin(theta) + r2*(1 - sin(theta)). For Kloepper
// proportions it is 4/9.
func (t Torispherical) SinTheta() float64 {
	return (1 - 2*t.Alpha2) / (2 * (t.Alpha1 - t.Alpha2))
}

// Theta is the transition angle in radians between crown and knuckle.
func (t Torispherical) Theta() float64 { return math.Asin(t.SinTheta()) }

// TransitionPoint returns the cross-section coordinate where the crown arc
// meets the knuckle arc, with x measured from the vessel axis and y from the
// weld line.
func (t Torispherical) TransitionPoint() (x, y float64) {
	x = t.CrownRadius() * t.SinTheta()
	y = t.KnuckleRadius() * math.Cos(t.Theta())
	return x, y
}

// crownCenterY is the vertical offset of the crown arc centre below the weld
// line, chosen so the crown passes through the transition point.
func (t Torispherical) crownCenterY() float64 {
	_, y := t.TransitionPoint()
	return y - t.CrownRadius()*math.Cos(t.Theta())
}

// Height returns the total inner height of the head above the weld line,
// excluding any straight flange.
func (t Torispherical) Height() float64 {
	return t.crownCenterY() + t.CrownRadius()
}

// Volume returns the analytical internal volume of the head, excluding any
// straight flange. It decomposes the dome into the spherical cap above the
// transition plane, the cylindrical slab between transition plane and weld
// line under the cap, and the solid of revolution of the knuckle arc. For
// Kloepper proportions the result is the familiar 0.099*Da^3.
func (t Torispherical) Volume() float64 {
	r1 := t.CrownRadius()
	r2 := t.KnuckleRadius()
	xc := t.Diameter/2 - r2
	theta := t.Theta()
	sin, cos := math.Sincos(theta)

	hc := r1 * (1 - cos)
	crown := math.Pi * hc * hc / 3 * (3*r1 - hc)
	slab := math.Pi * (r1 * sin) * (r1 * sin) * (r2 * cos)
	knuckle := math.Pi*xc*r2*r2*(math.Pi/2-theta-sin*cos) +
		2*math.Pi/3*r2*r2*r2*cos*cos*cos

	return crown + slab + knuckle
}

// Profile returns n cross-section points from the vessel axis (x = 0) to the
// outer edge (x = Da/2). The y values follow the crown arc up to the
// transition point and the knuckle arc beyond it, measured from the weld
// line.
func (t Torispherical) Profile(n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = floats.Span(make([]float64, n), 0, t.Diameter/2)
	ys = make([]float64, n)

	r1 := t.CrownRadius()
	r2 := t.KnuckleRadius()
	xTrans, _ := t.TransitionPoint()
	xKnuckle := t.Diameter/2 - r2
	yCrown := t.crownCenterY()

	for i, x := range xs {
		if x <= xTrans {
			ys[i] = yCrown + math.Sqrt(r1*r1-x*x)
		} else {
			d := r2*r2 - (x-xKnuckle)*(x-xKnuckle)
			if d < 0 {
				// rounding at the outer edge
				d = 0
			}
			ys[i] = math.Sqrt(d)
		}
	}
	return xs, ys
}

// Summary returns the key engineering dimensions as formatted text.
func (t Torispherical) Summary() string {
	kind := "custom torispherical"
	switch {
	case t.Alpha1 == 1.0 && t.Alpha2 == 0.1:
		kind = "Kloepperboden (DIN 28011)"
	case t.Alpha1 == 0.8 && t.Alpha2 == 0.154:
		kind = "Korbbogenboden (DIN 28013)"
	}
	x, y := t.TransitionPoint()
	return fmt.Sprintf(`Head type:            %s
Head diameter Da:     %10.2f mm
Crown radius r1:      %10.2f mm (alpha1=%g)
Knuckle radius r2:    %10.2f mm (alpha2=%g)
Transition angle:     %10.2f deg
Transition point:     (%.1f, %.1f) mm
Total inner height:   %10.2f mm
Internal volume:      %10.4g mm3
`, kind, t.Diameter, t.CrownRadius(), t.Alpha1, t.KnuckleRadius(), t.Alpha2,
		t.Theta()*180/math.Pi, x, y, t.Height(), t.Volume())
}
