package spectrum

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/heliogo/spectra/fitting"
	"github.com/heliogo/spectra/pkg/errors"
	logattr "github.com/heliogo/spectra/pkg/log"
)

// AxisRange restricts a fit to a sub-range of the axis. Each bound is
// resolved through nearest-pixel conversion, so quantities, bare values and
// pixel positions are all accepted.
type AxisRange struct {
	Min Bound
	Max Bound
}

// FitOptions controls GaussianFit. The zero value fits a single component
// seeded by the peak-guess heuristic over the full axis.
type FitOptions struct {
	// Guess seeds the primary line. When nil the heuristic from LineGuess
	// is used.
	Guess *fitting.Gaussian1D

	// ExtraLines adds further components, each an independent additive
	// Gaussian summed into the model before fitting.
	ExtraLines []fitting.Gaussian1D

	// XRange narrows the fit domain before extracting the data and axis
	// sub-arrays handed to the solver.
	XRange *AxisRange

	// MaxIterations and ObjectiveTol are forwarded verbatim to the solver.
	MaxIterations int
	ObjectiveTol  float64

	// Recalc is accepted for callers porting older analysis scripts and
	// ignored.
	//
	// Deprecated: has no effect.
	Recalc bool
}

// GaussianFit fits one or more Gaussian components to the data and returns
// the fitted composite model, queryable for each component's amplitude, mean
// and standard deviation. When per-sample uncertainty is present the fit is
// weighted by its reciprocal, with masked samples assigned zero weight.
// Solver failures are propagated unmodified; there is no retry or recovery.
func (s *Spectrum) GaussianFit(opts FitOptions) (*fitting.Result, error) {
	guess := opts.Guess
	if guess == nil {
		lg, err := s.LineGuess()
		if err != nil {
			return nil, err
		}
		guess = &lg
	}

	model := make(fitting.Composite, 0, 1+len(opts.ExtraLines))
	model = append(model, *guess)
	model = append(model, opts.ExtraLines...)

	lo, hi := 0, len(s.Data)
	if opts.XRange != nil {
		var err error
		if lo, err = s.boundToIndex(opts.XRange.Min, 0); err != nil {
			return nil, err
		}
		if hi, err = s.boundToIndex(opts.XRange.Max, len(s.Data)); err != nil {
			return nil, err
		}
		if hi < lo {
			hi = lo
		}
	}
	fitAxis := s.Axis[lo:hi]
	fitData := s.Data[lo:hi]

	var weights []float64
	if s.Uncertainty != nil {
		weights = make([]float64, hi-lo)
		for i := range weights {
			weights[i] = 1 / s.Uncertainty[lo+i]
			if s.Mask != nil && s.Mask[lo+i] {
				weights[i] = 0
			}
		}
	}

	slog.Debug("fitting gaussian composite",
		logattr.OperationKey, "gaussian_fit",
		logattr.ComponentKey, "spectrum",
		logattr.FitComponentsKey, len(model),
		logattr.SamplesKey, len(fitData),
		logattr.AxisUnitKey, s.AxisUnit.String(),
		logattr.HasUncertaintyKey, weights != nil,
	)

	return fitting.CurveFit(model, fitAxis, fitData, fitting.Options{
		Weights:       weights,
		MaxIterations: opts.MaxIterations,
		ObjectiveTol:  opts.ObjectiveTol,
	})
}

// LineGuess makes a first approximation of the Gaussian parameters from the
// data: the maximum sample gives the amplitude and its axis position the
// mean, and the distance between the half-maximum crossings on either side
// of the peak is used directly as the stddev seed (a full-width proxy, not a
// rigorous FWHM-to-sigma conversion). This only works for clear, single line
// profiles; it may produce nonsensical results in other cases.
func (s *Spectrum) LineGuess() (fitting.Gaussian1D, error) {
	if len(s.Data) == 0 {
		return fitting.Gaussian1D{}, errors.Wrap(errors.ErrEmptyData, "LineGuess")
	}

	argamp := floats.MaxIdx(s.Data)
	amp := s.Data[argamp]
	mean := s.Axis[argamp]

	diffs := make([]float64, len(s.Data))
	for i, d := range s.Data {
		diffs[i] = d - amp/2
		if diffs[i] < 0 {
			diffs[i] = -diffs[i]
		}
	}

	// Half-maximum crossings. The edge fallbacks are asymmetric: the right
	// crossing falls back to the last pixel, the left to pixel 0.
	rval := len(diffs) - 1
	if after := diffs[argamp+1:]; len(after) > 0 {
		rval = argamp + 1 + floats.MinIdx(after)
	}
	lval := 0
	if before := diffs[:argamp]; len(before) > 0 {
		lval = floats.MinIdx(before)
	}

	stddev := s.Axis[rval] - s.Axis[lval]
	return fitting.Gaussian1D{Amplitude: amp, Mean: mean, Stddev: stddev}, nil
}
