package chem_test

import (
	"errors"
	"math"
	"testing"

	"github.com/labworks/labman/pkg/core/chem"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimpleDilution(t *testing.T) {
	tests := []struct {
		name       string
		stockConc  float64
		finalVol   float64
		finalConc  float64
		wantStock  float64
		wantFactor float64
		wantErr    bool
		errField   string
	}{
		{
			name:       "tenfold dilution",
			stockConc:  1.0,
			finalVol:   100.0,
			finalConc:  0.1,
			wantStock:  10.0,
			wantFactor: 10.0,
		},
		{
			name:       "no dilution needed",
			stockConc:  0.5,
			finalVol:   50.0,
			finalConc:  0.5,
			wantStock:  50.0,
			wantFactor: 1.0,
		},
		{
			name:       "fractional volumes",
			stockConc:  10.0,
			finalVol:   1.5,
			finalConc:  2.0,
			wantStock:  0.3,
			wantFactor: 5.0,
		},
		{
			name:      "zero stock concentration",
			stockConc: 0,
			finalVol:  100,
			finalConc: 0.1,
			wantErr:   true,
			errField:  "stock_concentration",
		},
		{
			name:      "negative final volume",
			stockConc: 1,
			finalVol:  -1,
			finalConc: 0.1,
			wantErr:   true,
			errField:  "final_volume",
		},
		{
			name:      "zero final concentration",
			stockConc: 1,
			finalVol:  100,
			finalConc: 0,
			wantErr:   true,
			errField:  "final_concentration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chem.SimpleDilution(tt.stockConc, tt.finalVol, tt.finalConc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SimpleDilution() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ve *chem.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("SimpleDilution() error = %T, want *chem.ValidationError", err)
				}
				if ve.Field != tt.errField {
					t.Errorf("SimpleDilution() error field = %q, want %q", ve.Field, tt.errField)
				}
				return
			}
			if !approx(got.StockVolume, tt.wantStock) {
				t.Errorf("StockVolume = %v, want %v", got.StockVolume, tt.wantStock)
			}
			if !approx(got.StockVolume+got.DiluentVolume, tt.finalVol) {
				t.Errorf("StockVolume + DiluentVolume = %v, want %v",
					got.StockVolume+got.DiluentVolume, tt.finalVol)
			}
			if !approx(got.DilutionFactor, tt.wantFactor) {
				t.Errorf("DilutionFactor = %v, want %v", got.DilutionFactor, tt.wantFactor)
			}
		})
	}
}

func TestSerialDilution(t *testing.T) {
	t.Run("five twofold steps", func(t *testing.T) {
		steps, series, err := chem.SerialDilution(10.0, 2.0, 5, 100.0)
		if err != nil {
			t.Fatalf("SerialDilution() error = %v", err)
		}
		if len(steps) != 5 {
			t.Fatalf("len(steps) = %d, want 5", len(steps))
		}
		for i, s := range steps {
			if s.Step != i+1 {
				t.Errorf("steps[%d].Step = %d, want %d", i, s.Step, i+1)
			}
			wantConc := 10.0 / math.Pow(2.0, float64(i))
			if !approx(s.Concentration, wantConc) {
				t.Errorf("steps[%d].Concentration = %v, want %v", i, s.Concentration, wantConc)
			}
			if !approx(s.StockVolume, 50.0) {
				t.Errorf("steps[%d].StockVolume = %v, want 50", i, s.StockVolume)
			}
			if !approx(s.DiluentVolume, 50.0) {
				t.Errorf("steps[%d].DiluentVolume = %v, want 50", i, s.DiluentVolume)
			}
		}
		for i := 1; i < len(steps); i++ {
			if steps[i].Concentration >= steps[i-1].Concentration {
				t.Errorf("concentration not strictly decreasing at step %d", i+1)
			}
		}
		if !series.LogY {
			t.Errorf("series.LogY = false, want true")
		}
		if series.Kind != chem.PlotLine {
			t.Errorf("series.Kind = %q, want %q", series.Kind, chem.PlotLine)
		}
		if len(series.Points) != len(steps) {
			t.Errorf("len(series.Points) = %d, want %d", len(series.Points), len(steps))
		}
	})

	errTests := []struct {
		name        string
		initialConc float64
		factor      float64
		steps       int
		finalVolume float64
	}{
		{name: "factor of one", initialConc: 10, factor: 1.0, steps: 5, finalVolume: 100},
		{name: "zero steps", initialConc: 10, factor: 2, steps: 0, finalVolume: 100},
		{name: "too many steps", initialConc: 10, factor: 2, steps: 11, finalVolume: 100},
		{name: "zero initial concentration", initialConc: 0, factor: 2, steps: 5, finalVolume: 100},
		{name: "negative final volume", initialConc: 10, factor: 2, steps: 5, finalVolume: -1},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := chem.SerialDilution(tt.initialConc, tt.factor, tt.steps, tt.finalVolume); err == nil {
				t.Errorf("SerialDilution() expected error, got nil")
			}
		})
	}
}
