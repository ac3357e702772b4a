// Package spectrum provides the one-dimensional spectral data container used
// in solar data analysis: intensity samples indexed by a physical wavelength
// or frequency axis, with unit-aware indexing, axis transformation and
// Gaussian line-profile fitting.
package spectrum

import (
	"math"

	"github.com/heliogo/spectra/nddata"
	"github.com/heliogo/spectra/pkg/errors"
	"github.com/heliogo/spectra/units"
)

// Spectrum is a one-dimensional spectrum: an intensity array parallel to an
// axis of physical positions, tagged with the axis unit. The optional
// uncertainty and mask come from the embedded data container.
//
// The axis may be mutated in place by ShiftAxis and MapToAxis. Slicing
// returns a new Spectrum owning freshly copied buffers, so later in-place
// transformations never propagate between a spectrum and its slices.
type Spectrum struct {
	nddata.NDData

	// Axis holds the frequency or wavelength value at every data point.
	Axis []float64

	// AxisUnit gives the axis values physical meaning. Unit-bearing
	// indices are converted into it before pixel lookup.
	AxisUnit units.Unit
}

// New builds a Spectrum from parallel data and axis arrays. The container
// options attach per-sample uncertainty or a mask; all arrays must share one
// length. The spectrum takes ownership of the provided slices.
func New(data, axis []float64, axisUnit units.Unit, opts ...nddata.Option) (*Spectrum, error) {
	base, err := nddata.New(data, opts...)
	if err != nil {
		return nil, err
	}
	if len(axis) != len(data) {
		return nil, errors.NewDimensionError("spectrum.New: axis", len(data), len(axis))
	}
	return &Spectrum{NDData: base, Axis: axis, AxisUnit: axisUnit}, nil
}

// NearestAxisValue returns the axis value whose absolute difference to v is
// minimal, with v taken to be in the spectrum's own axis unit. Ties are
// broken by the first occurrence in scan order. Note that this returns the
// axis value at the nearest pixel, not the pixel itself.
func (s *Spectrum) NearestAxisValue(v float64) float64 {
	return s.Axis[s.nearestIndex(v)]
}

// NearestAxisValueQty converts q into the spectrum's axis unit and returns
// the nearest axis value, like NearestAxisValue. Conversion failures from the
// units package are returned untouched.
func (s *Spectrum) NearestAxisValueQty(q units.Quantity) (float64, error) {
	conv, err := q.To(s.AxisUnit)
	if err != nil {
		return 0, err
	}
	return s.NearestAxisValue(conv.Value), nil
}

// nearestIndex returns the pixel whose axis value is closest to v, v already
// being in the axis unit. First occurrence wins on ties.
func (s *Spectrum) nearestIndex(v float64) int {
	best := 0
	bestDiff := math.Abs(s.Axis[0] - v)
	for i := 1; i < len(s.Axis); i++ {
		if d := math.Abs(s.Axis[i] - v); d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return best
}

// subSpectrum copies the pixel range [start, stop) with the given step into
// a new Spectrum sharing only the axis unit. Uncertainty and mask are not
// carried over, matching slice semantics of the container.
func (s *Spectrum) subSpectrum(start, stop, step int) *Spectrum {
	n := 0
	if stop > start {
		n = (stop - start + step - 1) / step
	}
	data := make([]float64, 0, n)
	axis := make([]float64, 0, n)
	for i := start; i < stop; i += step {
		data = append(data, s.Data[i])
		axis = append(axis, s.Axis[i])
	}
	return &Spectrum{
		NDData:   nddata.NDData{Data: data},
		Axis:     axis,
		AxisUnit: s.AxisUnit,
	}
}
