// Package units provides the physical-quantity type used to disambiguate
// spectral indices and axis manipulation.
//
// A Unit is a runtime tag (dimension plus scale to the SI base), so a bare
// number can be promoted to a Quantity in whatever unit a spectrum carries.
// Conversion is only defined within a dimension; converting a frequency into
// a wavelength returns a UnitConversionError. No units library in the Go
// ecosystem models units as runtime tags attachable to plain float64 data,
// which is what nearest-pixel index resolution needs, so the handful of
// spectroscopy units is defined here.
package units

import (
	"fmt"

	"github.com/heliogo/spectra/pkg/errors"
)

// Dimension identifies the physical dimension of a unit.
type Dimension int

const (
	// Length covers wavelength axes.
	Length Dimension = iota
	// Frequency covers frequency axes.
	Frequency
)

func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Frequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// Unit is an immutable physical unit tag: a dimension and the factor that
// converts one of this unit into the dimension's SI base (meters or hertz).
// Units are value types and safe to share between spectra.
type Unit struct {
	name   string
	dim    Dimension
	factor float64
}

// Predefined wavelength units.
var (
	Meter      = Unit{"m", Length, 1}
	Millimeter = Unit{"mm", Length, 1e-3}
	Micrometer = Unit{"um", Length, 1e-6}
	Nanometer  = Unit{"nm", Length, 1e-9}
	Angstrom   = Unit{"Angstrom", Length, 1e-10}
)

// Predefined frequency units.
var (
	Hertz     = Unit{"Hz", Frequency, 1}
	Kilohertz = Unit{"kHz", Frequency, 1e3}
	Megahertz = Unit{"MHz", Frequency, 1e6}
	Gigahertz = Unit{"GHz", Frequency, 1e9}
	Terahertz = Unit{"THz", Frequency, 1e12}
)

// Dim returns the unit's physical dimension.
func (u Unit) Dim() Dimension {
	return u.dim
}

func (u Unit) String() string {
	return u.name
}

// IsZero reports whether u is the zero Unit, i.e. no unit has been assigned.
func (u Unit) IsZero() bool {
	return u == Unit{}
}

// Quantity is a numeric value tagged with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q builds a Quantity from a value and a unit.
func Q(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// To converts the quantity into another unit of the same dimension. A
// dimension mismatch returns a UnitConversionError.
func (q Quantity) To(unit Unit) (Quantity, error) {
	if q.Unit.dim != unit.dim {
		return Quantity{}, errors.NewUnitConversionError(q.Unit.String(), unit.String())
	}
	return Quantity{Value: q.Value * q.Unit.factor / unit.factor, Unit: unit}, nil
}

// MustTo converts like To but panics on a dimension mismatch. Intended for
// fixed conversions known valid at compile time.
func (q Quantity) MustTo(unit Unit) Quantity {
	out, err := q.To(unit)
	if err != nil {
		panic(err)
	}
	return out
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}
