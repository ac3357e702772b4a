package fitting

import (
	"github.com/maorshutman/lm"

	"github.com/heliogo/spectra/pkg/errors"
)

// Default solver settings, matching common Levenberg-Marquardt practice for
// line profiles.
const (
	defaultMaxIterations = 100
	defaultObjectiveTol  = 1e-16
	defaultTau           = 1e-6
	defaultEps           = 1e-8
)

// Options carries per-sample weights and the solver knobs forwarded verbatim
// to the Levenberg-Marquardt implementation. Zero values select defaults.
type Options struct {
	// Weights multiplies each residual; a zero weight excludes the sample
	// while preserving the residual vector's shape.
	Weights []float64

	// MaxIterations bounds the solver's iteration count.
	MaxIterations int

	// ObjectiveTol stops the solver once the objective falls below it.
	ObjectiveTol float64

	// Tau scales the initial damping parameter.
	Tau float64

	// Eps1 and Eps2 are the solver's gradient and step-size tolerances.
	Eps1 float64
	Eps2 float64
}

// Result is a fitted composite model. Each component's amplitude, mean and
// standard deviation are queryable through Model, with FWHM derivable per
// component.
type Result struct {
	// Model holds the refined components in the order they were supplied.
	Model Composite

	// Objective is the final weighted least-squares objective,
	// 0.5 * sum of squared residuals.
	Objective float64
}

// CurveFit refines init against (x, y) with Levenberg-Marquardt least
// squares and returns the fitted composite. Solver failures, including
// non-convergence, are returned unmodified; a ConvergenceWarning is emitted
// through the warning channel in that case.
func CurveFit(init Composite, x, y []float64, opts Options) (*Result, error) {
	if len(init) == 0 {
		return nil, errors.NewValueError("CurveFit", "no model components")
	}
	if len(x) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "CurveFit")
	}
	if len(y) != len(x) {
		return nil, errors.NewDimensionError("CurveFit", len(x), len(y))
	}
	if opts.Weights != nil && len(opts.Weights) != len(x) {
		return nil, errors.NewDimensionError("CurveFit: weights", len(x), len(opts.Weights))
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	objTol := opts.ObjectiveTol
	if objTol <= 0 {
		objTol = defaultObjectiveTol
	}
	tau := opts.Tau
	if tau <= 0 {
		tau = defaultTau
	}
	eps1, eps2 := opts.Eps1, opts.Eps2
	if eps1 <= 0 {
		eps1 = defaultEps
	}
	if eps2 <= 0 {
		eps2 = defaultEps
	}

	residuals := func(dst, params []float64) {
		for i, xv := range x {
			r := evalParams(params, xv) - y[i]
			if opts.Weights != nil {
				r *= opts.Weights[i]
			}
			dst[i] = r
		}
	}
	jacobian := lm.NumJac{Func: residuals}

	problem := lm.LMProblem{
		Dim:        3 * len(init),
		Size:       len(x),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: init.params(),
		Tau:        tau,
		Eps1:       eps1,
		Eps2:       eps2,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: maxIter, ObjectiveTol: objTol})
	if err != nil {
		errors.Warn(errors.NewConvergenceWarning("levenberg-marquardt", maxIter, err.Error()))
		return nil, err
	}

	fitted := fromParams(results.X)

	dst := make([]float64, len(x))
	residuals(dst, results.X)
	var objective float64
	for _, r := range dst {
		objective += r * r
	}
	objective *= 0.5

	return &Result{Model: fitted, Objective: objective}, nil
}
