// Package log defines standard attribute keys for spectral operations.
//
// Using these keys consistently keeps log output filterable across the
// library: every fit, slice or axis transformation reports its context under
// the same hierarchical names (e.g. "spectrum.samples", "fit.components").
package log

// Operation context
const (
	// OperationKey specifies the spectral operation being performed.
	// Standard values: "get", "slice", "gaussian_fit", "shift_axis",
	// "map_to_axis", "plot", "peek"
	OperationKey = "spectra.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "spectrum", "fitting", "units"
	ComponentKey = "spectra.component"
)

// Spectrum shape and axis
const (
	// SamplesKey indicates the number of samples in the spectrum.
	SamplesKey = "spectrum.samples"

	// AxisUnitKey records the unit of the spectral axis, e.g. "Angstrom"
	// or "GHz".
	AxisUnitKey = "spectrum.axis_unit"

	// HasUncertaintyKey records whether per-sample standard deviations are
	// attached and therefore whether the fit is weighted.
	HasUncertaintyKey = "spectrum.has_uncertainty"
)

// Fitting
const (
	// FitComponentsKey indicates the number of Gaussian components in a
	// composite fit.
	FitComponentsKey = "fit.components"

	// FitWindowKey records the axis sub-range a fit was restricted to.
	FitWindowKey = "fit.window"

	// IterationsKey indicates the iteration limit handed to the solver.
	IterationsKey = "fit.max_iterations"

	// ObjectiveKey records the final weighted least-squares objective.
	ObjectiveKey = "fit.objective"
)
