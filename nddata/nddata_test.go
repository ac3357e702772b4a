package nddata

import (
	"testing"

	"github.com/heliogo/spectra/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		opts    []Option
		wantErr bool
	}{
		{
			name: "data only",
			data: []float64{1, 2, 3},
		},
		{
			name: "with uncertainty and mask",
			data: []float64{1, 2, 3},
			opts: []Option{
				WithUncertainty([]float64{0.1, 0.1, 0.2}),
				WithMask([]bool{false, true, false}),
			},
		},
		{
			name:    "empty data",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "uncertainty length mismatch",
			data:    []float64{1, 2, 3},
			opts:    []Option{WithUncertainty([]float64{0.1, 0.1})},
			wantErr: true,
		},
		{
			name:    "mask length mismatch",
			data:    []float64{1, 2, 3},
			opts:    []Option{WithMask([]bool{false})},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.data, tt.opts...)

			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Len() != len(tt.data) {
				t.Errorf("Len() = %d, want %d", got.Len(), len(tt.data))
			}
		})
	}
}

func TestMismatchIsDimensionError(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, WithUncertainty([]float64{0.1}))

	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("error is not a DimensionError: %v", err)
	}
	if de.Expected != 3 || de.Got != 1 {
		t.Errorf("got Expected=%d Got=%d, want 3 and 1", de.Expected, de.Got)
	}
}

func TestHasUncertainty(t *testing.T) {
	plain, _ := New([]float64{1, 2})
	if plain.HasUncertainty() {
		t.Error("HasUncertainty() = true without uncertainty")
	}

	withU, _ := New([]float64{1, 2}, WithUncertainty([]float64{0.1, 0.2}))
	if !withU.HasUncertainty() {
		t.Error("HasUncertainty() = false with uncertainty attached")
	}
}
