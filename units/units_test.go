package units

import (
	"math"
	"testing"

	"github.com/heliogo/spectra/pkg/errors"
)

func TestQuantityTo(t *testing.T) {
	tests := []struct {
		name      string
		q         Quantity
		to        Unit
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "identity conversion",
			q:         Q(6563, Angstrom),
			to:        Angstrom,
			want:      6563,
			tolerance: 0,
		},
		{
			name:      "angstrom to nanometer",
			q:         Q(6563, Angstrom),
			to:        Nanometer,
			want:      656.3,
			tolerance: 1e-9,
		},
		{
			name:      "nanometer to meter",
			q:         Q(500, Nanometer),
			to:        Meter,
			want:      5e-7,
			tolerance: 1e-18,
		},
		{
			name:      "gigahertz to megahertz",
			q:         Q(1.42, Gigahertz),
			to:        Megahertz,
			want:      1420,
			tolerance: 1e-9,
		},
		{
			name:      "terahertz to hertz",
			q:         Q(0.5, Terahertz),
			to:        Hertz,
			want:      5e11,
			tolerance: 1,
		},
		{
			name:    "length to frequency fails",
			q:       Q(6563, Angstrom),
			to:      Gigahertz,
			wantErr: true,
		},
		{
			name:    "frequency to length fails",
			q:       Q(1.42, Gigahertz),
			to:      Nanometer,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.To(tt.to)

			if (err != nil) != tt.wantErr {
				t.Fatalf("To() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ue *errors.UnitConversionError
				if !errors.As(err, &ue) {
					t.Fatalf("error is not a UnitConversionError: %v", err)
				}
				return
			}

			if math.Abs(got.Value-tt.want) > tt.tolerance {
				t.Errorf("To() = %v, want %v (tolerance %v)", got.Value, tt.want, tt.tolerance)
			}
			if got.Unit != tt.to {
				t.Errorf("To() unit = %v, want %v", got.Unit, tt.to)
			}
		})
	}
}

func TestRoundTripConversion(t *testing.T) {
	q := Q(123.456, Nanometer)
	back := q.MustTo(Angstrom).MustTo(Nanometer)

	if math.Abs(back.Value-q.Value) > 1e-9 {
		t.Errorf("round trip changed value: %v -> %v", q.Value, back.Value)
	}
}

func TestMustToPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTo() did not panic on dimension mismatch")
		}
	}()
	Q(1, Hertz).MustTo(Meter)
}

func TestUnitIsZero(t *testing.T) {
	var none Unit
	if !none.IsZero() {
		t.Error("zero Unit not reported as zero")
	}
	if Angstrom.IsZero() {
		t.Error("Angstrom reported as zero unit")
	}
}

func TestQuantityString(t *testing.T) {
	if got := Q(656.3, Nanometer).String(); got != "656.3 nm" {
		t.Errorf("String() = %q, want %q", got, "656.3 nm")
	}
}
