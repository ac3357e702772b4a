package spectrum

import (
	"fmt"

	"github.com/heliogo/spectra/pkg/errors"
	"github.com/heliogo/spectra/units"
)

// boundKind tags one end of a slice expression.
type boundKind int

const (
	boundNone boundKind = iota
	boundPixel
	boundValue
	boundQty
)

// Bound is one end of a slice expression: absent, a plain pixel position, a
// bare numeric axis value, or a unit-bearing quantity. Which kind each end
// carries decides how the whole slice is unit-resolved.
type Bound struct {
	kind  boundKind
	pixel int
	value float64
	qty   units.Quantity
}

// NoBound is the absent bound, like an omitted slice end.
func NoBound() Bound {
	return Bound{kind: boundNone}
}

// PixelBound bounds the slice at a plain integer pixel position.
func PixelBound(i int) Bound {
	return Bound{kind: boundPixel, pixel: i}
}

// ValueBound bounds the slice at a bare numeric axis value, interpreted in
// whatever unit slice resolution assigns.
func ValueBound(v float64) Bound {
	return Bound{kind: boundValue, value: v}
}

// QtyBound bounds the slice at a unit-bearing quantity.
func QtyBound(q units.Quantity) Bound {
	return Bound{kind: boundQty, qty: q}
}

// asFloat returns the numeric magnitude of a pixel or value bound.
func (b Bound) asFloat() float64 {
	if b.kind == boundPixel {
		return float64(b.pixel)
	}
	return b.value
}

// SliceIndex is a slice expression over a spectrum. Start and Stop may each
// be absent, a pixel, a bare value or a quantity; Step must be a plain
// integer bound (or absent, meaning 1) — any other step kind is rejected.
type SliceIndex struct {
	Start Bound
	Stop  Bound
	Step  Bound
}

// indexKind tags an index expression.
type indexKind int

const (
	indexInvalid indexKind = iota
	indexPixel
	indexValue
	indexQty
	indexSlice
	indexTuple
)

// Index is an index expression over a spectrum, one constructor per kind.
// The zero Index is invalid and rejected by Get.
type Index struct {
	kind  indexKind
	pixel int
	value float64
	qty   units.Quantity
	slice SliceIndex
}

// Pixel indexes a single sample by integer pixel position.
func Pixel(i int) Index {
	return Index{kind: indexPixel, pixel: i}
}

// Value indexes the sample nearest to a bare numeric value in the spectrum's
// own axis unit.
func Value(v float64) Index {
	return Index{kind: indexValue, value: v}
}

// Qty indexes the sample nearest to a unit-bearing quantity, converted into
// the spectrum's axis unit first.
func Qty(q units.Quantity) Index {
	return Index{kind: indexQty, qty: q}
}

// Range indexes a sub-range of the spectrum.
func Range(r SliceIndex) Index {
	return Index{kind: indexSlice, slice: r}
}

// Tuple is multi-axis indexing. Spectra are one-dimensional, so Get always
// rejects it; the constructor exists so callers porting n-dimensional code
// get the dedicated error rather than a silent misuse.
func Tuple(_ ...Index) Index {
	return Index{kind: indexTuple}
}

// Item is the result of resolving an index expression: a single sample for
// pixel, value and quantity kinds, or a sub-spectrum for a range.
type Item struct {
	Sample float64

	// Sub is non-nil exactly when the index was a range.
	Sub *Spectrum
}

// Get resolves an index expression against the spectrum. It is the single
// resolver for every index kind: integer pixel lookup, nearest-pixel lookup
// for bare values and quantities, unit-resolved slicing, and rejection of
// tuple and unrecognized kinds.
func (s *Spectrum) Get(idx Index) (Item, error) {
	const op = "Get"
	switch idx.kind {
	case indexPixel:
		if idx.pixel < 0 || idx.pixel >= len(s.Data) {
			return Item{}, errors.NewIndexError(op, errors.KindOutOfRange,
				fmt.Sprintf("pixel %d with %d samples", idx.pixel, len(s.Data)))
		}
		return Item{Sample: s.Data[idx.pixel]}, nil

	case indexValue:
		return Item{Sample: s.Data[s.nearestIndex(idx.value)]}, nil

	case indexQty:
		conv, err := idx.qty.To(s.AxisUnit)
		if err != nil {
			return Item{}, err
		}
		return Item{Sample: s.Data[s.nearestIndex(conv.Value)]}, nil

	case indexSlice:
		start, stop, step, err := s.resolveSlice(idx.slice)
		if err != nil {
			return Item{}, err
		}
		return Item{Sub: s.subSpectrum(start, stop, step)}, nil

	case indexTuple:
		return Item{}, errors.NewIndexError(op, errors.KindTooManyIndices, "spectra are one-dimensional")

	default:
		return Item{}, errors.NewIndexError(op, errors.KindUnsupportedIndex, "index kind not supported")
	}
}

// At returns the sample at an integer pixel position.
func (s *Spectrum) At(i int) (float64, error) {
	item, err := s.Get(Pixel(i))
	if err != nil {
		return 0, err
	}
	return item.Sample, nil
}

// AtValue returns the sample nearest to a bare value in the axis unit.
func (s *Spectrum) AtValue(v float64) (float64, error) {
	item, err := s.Get(Value(v))
	if err != nil {
		return 0, err
	}
	return item.Sample, nil
}

// AtQty returns the sample nearest to a quantity.
func (s *Spectrum) AtQty(q units.Quantity) (float64, error) {
	item, err := s.Get(Qty(q))
	if err != nil {
		return 0, err
	}
	return item.Sample, nil
}

// Cut returns the sub-spectrum selected by a slice expression.
func (s *Spectrum) Cut(r SliceIndex) (*Spectrum, error) {
	item, err := s.Get(Range(r))
	if err != nil {
		return nil, err
	}
	return item.Sub, nil
}

// resolveSlice turns a slice expression into concrete pixel positions. The
// unit inference over the start/stop pair is delegated to resolveSliceUnit;
// when a unit was assigned, both present bounds go through nearest-pixel
// conversion. A plain-integer slice is used for pixel indexing unchanged.
func (s *Spectrum) resolveSlice(r SliceIndex) (start, stop, step int, err error) {
	const op = "Get"

	switch r.Step.kind {
	case boundNone:
		step = 1
	case boundPixel:
		step = r.Step.pixel
	default:
		return 0, 0, 0, errors.NewIndexError(op, errors.KindBadStep, "the step must be an int")
	}
	if step < 1 {
		return 0, 0, 0, errors.NewIndexError(op, errors.KindBadStep,
			fmt.Sprintf("step %d must be positive", step))
	}

	unit, lo, hi := resolveSliceUnit(r.Start, r.Stop, s.AxisUnit)

	if !unit.IsZero() {
		start, err = s.boundToIndex(lo, 0)
		if err != nil {
			return 0, 0, 0, err
		}
		stop, err = s.boundToIndex(hi, len(s.Data))
		if err != nil {
			return 0, 0, 0, err
		}
	} else {
		// No units involved anywhere: plain pixel slicing.
		start, stop = 0, len(s.Data)
		if lo.kind == boundPixel {
			start = lo.pixel
		}
		if hi.kind == boundPixel {
			stop = hi.pixel
		}
		if start < 0 || stop > len(s.Data) || start > stop {
			return 0, 0, 0, errors.NewIndexError(op, errors.KindOutOfRange,
				fmt.Sprintf("pixel range [%d:%d] with %d samples", start, stop, len(s.Data)))
		}
	}
	return start, stop, step, nil
}

// boundToIndex maps a unit-resolved bound to a pixel position through
// nearest-pixel conversion, or to the default for an absent bound.
func (s *Spectrum) boundToIndex(b Bound, absent int) (int, error) {
	switch b.kind {
	case boundNone:
		return absent, nil
	case boundQty:
		conv, err := b.qty.To(s.AxisUnit)
		if err != nil {
			return 0, err
		}
		return s.nearestIndex(conv.Value), nil
	default:
		return s.nearestIndex(b.asFloat()), nil
	}
}

// resolveSliceUnit performs the unit inference over a slice's start/stop
// pair and returns the governing unit together with the (possibly promoted)
// bounds. The zero unit means no unit was involved anywhere and the slice is
// a plain pixel range.
//
// The precedence is:
//   - a quantity start governs both ends; a bare numeric stop is promoted
//     into the start's unit;
//   - a bare-value start takes its unit from a quantity stop, else the
//     spectrum's default, and promotes both ends into it;
//   - a pixel start stays a pixel unless the stop carries or derives a unit,
//     in which case the start is promoted too;
//   - with no start, the unit derives solely from the stop, if present.
func resolveSliceUnit(start, stop Bound, def units.Unit) (units.Unit, Bound, Bound) {
	var unit units.Unit

	switch start.kind {
	case boundQty:
		unit = start.qty.Unit
		if stop.kind == boundPixel || stop.kind == boundValue {
			stop = QtyBound(units.Q(stop.asFloat(), unit))
		}

	case boundValue:
		if stop.kind == boundQty {
			unit = stop.qty.Unit
		} else {
			unit = def
			if stop.kind != boundNone {
				stop = QtyBound(units.Q(stop.asFloat(), unit))
			}
		}
		start = QtyBound(units.Q(start.value, unit))

	case boundPixel:
		if stop.kind == boundQty {
			unit = stop.qty.Unit
			start = QtyBound(units.Q(float64(start.pixel), unit))
		} else if stop.kind == boundValue {
			unit = def
			start = QtyBound(units.Q(float64(start.pixel), unit))
			stop = QtyBound(units.Q(stop.value, unit))
		}

	default:
		if stop.kind == boundQty {
			unit = stop.qty.Unit
		} else if stop.kind == boundValue {
			unit = def
			stop = QtyBound(units.Q(stop.value, unit))
		}
	}

	return unit, start, stop
}
