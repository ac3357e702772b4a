package spectrum

import (
	"math"
	"testing"

	"github.com/heliogo/spectra/fitting"
	"github.com/heliogo/spectra/nddata"
	"github.com/heliogo/spectra/units"
)

func gaussianSpectrum(t *testing.T, truth fitting.Composite, n int, x0, dx float64, opts ...nddata.Option) *Spectrum {
	t.Helper()
	axis := make([]float64, n)
	data := make([]float64, n)
	for i := range axis {
		axis[i] = x0 + float64(i)*dx
		data[i] = truth.Eval(axis[i])
	}
	s, err := New(data, axis, units.Angstrom, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestLineGuessSymmetricProfile(t *testing.T) {
	s := testSpectrum(t)

	guess, err := s.LineGuess()
	if err != nil {
		t.Fatalf("LineGuess() error = %v", err)
	}

	if guess.Amplitude != 9 {
		t.Errorf("amplitude = %v, want 9", guess.Amplitude)
	}
	if guess.Mean != 3 {
		t.Errorf("mean = %v, want 3", guess.Mean)
	}
	// Half-max crossings sit at pixels 2 and 4 on this symmetric profile.
	if guess.Stddev != 2 {
		t.Errorf("stddev = %v, want 2", guess.Stddev)
	}
}

func TestLineGuessPeakAtEdges(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		wantMean float64
	}{
		{name: "peak at first pixel", data: []float64{9, 4, 1, 0}, wantMean: 0},
		{name: "peak at last pixel", data: []float64{0, 1, 4, 9}, wantMean: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis := []float64{0, 1, 2, 3}
			s, err := New(tt.data, axis, units.Angstrom)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			guess, err := s.LineGuess()
			if err != nil {
				t.Fatalf("LineGuess() error = %v", err)
			}
			if guess.Amplitude != 9 {
				t.Errorf("amplitude = %v, want 9", guess.Amplitude)
			}
			if guess.Mean != tt.wantMean {
				t.Errorf("mean = %v, want %v", guess.Mean, tt.wantMean)
			}
		})
	}
}

func TestGaussianFitRecoversKnownLine(t *testing.T) {
	truth := fitting.Composite{{Amplitude: 5, Mean: 10, Stddev: 2}}
	s := gaussianSpectrum(t, truth, 81, 0, 0.25)

	res, err := s.GaussianFit(FitOptions{})
	if err != nil {
		t.Fatalf("GaussianFit() error = %v", err)
	}
	if len(res.Model) != 1 {
		t.Fatalf("got %d components, want 1", len(res.Model))
	}

	g := res.Model[0]
	if math.Abs(g.Amplitude-5) > 0.05 {
		t.Errorf("amplitude = %v, want 5 within 1%%", g.Amplitude)
	}
	if math.Abs(g.Mean-10) > 0.1 {
		t.Errorf("mean = %v, want 10 within 1%%", g.Mean)
	}
	if math.Abs(math.Abs(g.Stddev)-2) > 0.02 {
		t.Errorf("stddev = %v, want 2 within 1%%", g.Stddev)
	}
}

func TestGaussianFitWithExtraLines(t *testing.T) {
	truth := fitting.Composite{
		{Amplitude: 5, Mean: 4, Stddev: 0.8},
		{Amplitude: 3, Mean: 12, Stddev: 1.5},
	}
	s := gaussianSpectrum(t, truth, 161, 0, 0.1)

	res, err := s.GaussianFit(FitOptions{
		Guess:      &fitting.Gaussian1D{Amplitude: 4, Mean: 3.5, Stddev: 1},
		ExtraLines: []fitting.Gaussian1D{{Amplitude: 2, Mean: 12.5, Stddev: 1}},
	})
	if err != nil {
		t.Fatalf("GaussianFit() error = %v", err)
	}
	if len(res.Model) != 2 {
		t.Fatalf("got %d components, want 2", len(res.Model))
	}

	if math.Abs(res.Model[0].Mean-4) > 0.05 {
		t.Errorf("first mean = %v, want 4", res.Model[0].Mean)
	}
	if math.Abs(res.Model[1].Mean-12) > 0.05 {
		t.Errorf("second mean = %v, want 12", res.Model[1].Mean)
	}
}

func TestGaussianFitXRange(t *testing.T) {
	// A strong line at 10 with a contaminating line far outside the window.
	truth := fitting.Composite{
		{Amplitude: 5, Mean: 10, Stddev: 1},
		{Amplitude: 50, Mean: 30, Stddev: 1},
	}
	s := gaussianSpectrum(t, truth, 351, 0, 0.1)

	res, err := s.GaussianFit(FitOptions{
		Guess: &fitting.Gaussian1D{Amplitude: 4, Mean: 9.5, Stddev: 1.5},
		XRange: &AxisRange{
			Min: QtyBound(units.Q(5, units.Angstrom)),
			Max: QtyBound(units.Q(15, units.Angstrom)),
		},
	})
	if err != nil {
		t.Fatalf("GaussianFit() error = %v", err)
	}

	g := res.Model[0]
	if math.Abs(g.Amplitude-5) > 0.05 {
		t.Errorf("amplitude = %v, want 5 (window should exclude the contaminant)", g.Amplitude)
	}
	if math.Abs(g.Mean-10) > 0.05 {
		t.Errorf("mean = %v, want 10", g.Mean)
	}
}

func TestGaussianFitWeightsAndMask(t *testing.T) {
	truth := fitting.Composite{{Amplitude: 5, Mean: 10, Stddev: 2}}

	n := 81
	uncertainty := make([]float64, n)
	mask := make([]bool, n)
	for i := range uncertainty {
		uncertainty[i] = 0.1
	}
	// Corrupt one sample and mask it out.
	mask[40] = true

	s := gaussianSpectrum(t, truth, n, 0, 0.25,
		nddata.WithUncertainty(uncertainty), nddata.WithMask(mask))
	s.Data[40] = 1000

	res, err := s.GaussianFit(FitOptions{
		Guess: &fitting.Gaussian1D{Amplitude: 4, Mean: 9, Stddev: 3},
	})
	if err != nil {
		t.Fatalf("GaussianFit() error = %v", err)
	}

	g := res.Model[0]
	if math.Abs(g.Amplitude-5) > 0.05 {
		t.Errorf("amplitude = %v, want 5 (masked sample should carry zero weight)", g.Amplitude)
	}
	if math.Abs(g.Mean-10) > 0.05 {
		t.Errorf("mean = %v, want 10", g.Mean)
	}
}

func TestGaussianFitRecalcIsIgnored(t *testing.T) {
	truth := fitting.Composite{{Amplitude: 5, Mean: 10, Stddev: 2}}
	s := gaussianSpectrum(t, truth, 81, 0, 0.25)

	with, err := s.GaussianFit(FitOptions{Recalc: true})
	if err != nil {
		t.Fatalf("GaussianFit(Recalc) error = %v", err)
	}
	without, err := s.GaussianFit(FitOptions{})
	if err != nil {
		t.Fatalf("GaussianFit() error = %v", err)
	}

	if math.Abs(with.Model[0].Mean-without.Model[0].Mean) > 1e-9 {
		t.Errorf("Recalc changed the fit: %v vs %v", with.Model[0].Mean, without.Model[0].Mean)
	}
}
