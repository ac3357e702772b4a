package spectrum

import (
	"gonum.org/v1/gonum/floats"

	"github.com/heliogo/spectra/units"
)

// ShiftAxis shifts the entire axis in place by a linear offset given in the
// spectrum's own axis unit.
func (s *Spectrum) ShiftAxis(offset float64) {
	floats.AddConst(offset, s.Axis)
}

// ShiftAxisQty shifts the axis in place by a unit-bearing offset, converting
// it into the axis unit first. Conversion failures leave the axis untouched.
func (s *Spectrum) ShiftAxisQty(offset units.Quantity) error {
	conv, err := offset.To(s.AxisUnit)
	if err != nil {
		return err
	}
	floats.AddConst(conv.Value, s.Axis)
	return nil
}

// MapToAxis applies a unit-aware function to every axis value in place. Each
// value is tagged with the axis unit, fun is applied per element, and the
// numeric magnitudes of the results are written back. This enables
// non-linear axis corrections such as wavelength calibration curves.
func (s *Spectrum) MapToAxis(fun func(units.Quantity) units.Quantity) {
	for i, tick := range s.Axis {
		s.Axis[i] = fun(units.Q(tick, s.AxisUnit)).Value
	}
}
