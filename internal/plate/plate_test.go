package plate

import (
	"errors"
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	t.Run("rounds up to the next series entry", func(t *testing.T) {
		test := []struct {
			name                   string
			eShell, eHead, allowance float64
			wantNominal            float64
		}{
			{"below smallest", 0.4, 0.8, 0, 2},
			{"between entries", 1.5, 2.31, 0, 3},
			{"allowance governs", 1.5, 2.31, 1, 4},
			{"shell governs", 21, 3, 0, 22},
			{"largest entry", 39, 12, 1, 40},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				shellReq, headReq, nominal, err := Select(tt.eShell, tt.eHead, tt.allowance)
				if err != nil {
					t.Fatal(err)
				}
				if shellReq != tt.eShell+tt.allowance || headReq != tt.eHead+tt.allowance {
					t.Errorf("allowance not applied: %v %v", shellReq, headReq)
				}
				if nominal != tt.wantNominal {
					t.Errorf("expected nominal %g, got %g", tt.wantNominal, nominal)
				}
				if !slices.Contains(Series(), nominal) {
					t.Errorf("nominal %g not in standard series", nominal)
				}
			})
		}
	})

	t.Run("exact series hit is not rounded up", func(t *testing.T) {
		_, _, nominal, err := Select(20, 10, 5)
		if err != nil {
			t.Fatal(err)
		}
		if nominal != 25 {
			t.Errorf("expected 25, got %g", nominal)
		}
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		_, _, _, err := Select(35, 10, 6)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("expected ErrCapacityExceeded, got %v", err)
		}
	})

	t.Run("negative allowance rejected", func(t *testing.T) {
		if _, _, _, err := Select(1, 1, -0.5); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSeriesCopy(t *testing.T) {
	s := Series()
	s[0] = 99
	if Series()[0] != 2 {
		t.Error("Series must return a copy")
	}
}
