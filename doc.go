// Package spectra provides one-dimensional spectral data containers for
// solar and astrophysical data analysis in Go.
//
// A Spectrum pairs an intensity array with a physical wavelength or
// frequency axis and supports unit-aware indexing, axis transformation and
// Gaussian line-profile fitting backed by a Levenberg-Marquardt solver.
//
// # Features
//
// - Unit-aware indexing: address samples by pixel, bare axis value or
// physical quantity, with nearest-pixel resolution
// - Slice expressions mixing pixels, values and quantities, with the unit
// inferred from the bounds
// - Gaussian line fitting with multiple additive components, per-sample
// weights from uncertainty, and a peak-detection heuristic for seeding
// - In-place axis shifts and non-linear axis corrections
// - Figure rendering through gonum/plot
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/heliogo/spectra/spectrum"
//	    "github.com/heliogo/spectra/units"
//	)
//
//	func main() {
//	    s, err := spectrum.New(
//	        []float64{0, 1, 4, 9, 4, 1, 0},
//	        []float64{0, 1, 2, 3, 4, 5, 6},
//	        units.Angstrom,
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fit, err := s.GaussianFit(spectrum.FitOptions{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(fit.Model[0].Amplitude, fit.Model[0].Mean, fit.Model[0].FWHM())
//	}
//
// # Packages
//
// - spectrum: the Spectrum container and its operations
// - units: physical units and quantities
// - nddata: the underlying data/uncertainty/mask container
// - fitting: Gaussian models and the least-squares fit
// - pkg/errors, pkg/log: structured errors and logging
package spectra
