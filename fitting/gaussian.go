// Package fitting provides the parametrized Gaussian line model and the
// nonlinear least-squares routine that refines it against spectral data.
package fitting

import "math"

// fwhmFactor converts a Gaussian standard deviation into the full width at
// half maximum: 2*sqrt(2*ln 2).
const fwhmFactor = 2.3548200450309493

// Gaussian1D is a single Gaussian line profile parametrized by amplitude,
// mean and standard deviation.
type Gaussian1D struct {
	Amplitude float64
	Mean      float64
	Stddev    float64
}

// Eval evaluates the profile at x.
func (g Gaussian1D) Eval(x float64) float64 {
	d := x - g.Mean
	return g.Amplitude * math.Exp(-d*d/(2*g.Stddev*g.Stddev))
}

// FWHM returns the full width at half maximum of the profile.
func (g Gaussian1D) FWHM() float64 {
	return fwhmFactor * math.Abs(g.Stddev)
}

// Composite is an additive sum of independent Gaussian components, evaluated
// together during fitting.
type Composite []Gaussian1D

// Eval evaluates the composite model at x.
func (c Composite) Eval(x float64) float64 {
	var sum float64
	for _, g := range c {
		sum += g.Eval(x)
	}
	return sum
}

// params flattens the composite into the solver's parameter vector, three
// entries per component.
func (c Composite) params() []float64 {
	p := make([]float64, 0, 3*len(c))
	for _, g := range c {
		p = append(p, g.Amplitude, g.Mean, g.Stddev)
	}
	return p
}

// fromParams rebuilds a composite from a solver parameter vector.
func fromParams(p []float64) Composite {
	c := make(Composite, 0, len(p)/3)
	for i := 0; i+2 < len(p); i += 3 {
		c = append(c, Gaussian1D{Amplitude: p[i], Mean: p[i+1], Stddev: p[i+2]})
	}
	return c
}

// evalParams evaluates the composite described by a raw parameter vector at
// x, avoiding a Composite allocation inside the residual loop.
func evalParams(p []float64, x float64) float64 {
	var sum float64
	for i := 0; i+2 < len(p); i += 3 {
		d := x - p[i+1]
		sum += p[i] * math.Exp(-d*d/(2*p[i+2]*p[i+2]))
	}
	return sum
}
