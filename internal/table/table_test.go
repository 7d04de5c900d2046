package table

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	test := []struct {
		name    string
		xs, ys  []float64
		wantErr bool
	}{
		{"valid", []float64{0, 1, 2}, []float64{10, 20, 30}, false},
		{"two points", []float64{0, 1}, []float64{10, 20}, false},
		{"length mismatch", []float64{0, 1, 2}, []float64{10, 20}, true},
		{"single point", []float64{0}, []float64{10}, true},
		{"not increasing", []float64{0, 2, 1}, []float64{10, 20, 30}, true},
		{"duplicate breakpoint", []float64{0, 1, 1}, []float64{10, 20, 30}, true},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.xs, tt.ys)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAt(t *testing.T) {
	tab, err := New(
		[]float64{20, 50, 100, 200},
		[]float64{147, 132, 120, 106},
	)
	require.NoError(t, err)

	t.Run("exact breakpoints", func(t *testing.T) {
		// Breakpoint hits must return the tabulated value bit-exactly.
		for i, x := range []float64{20, 50, 100, 200} {
			got, err := tab.At(x)
			require.NoError(t, err)
			assert.Equal(t, []float64{147, 132, 120, 106}[i], got)
		}
	})

	t.Run("linear between breakpoints", func(t *testing.T) {
		got, err := tab.At(75)
		require.NoError(t, err)
		assert.InDelta(t, 126, got, 1e-12)

		got, err = tab.At(150)
		require.NoError(t, err)
		assert.InDelta(t, 113, got, 1e-12)
	})

	t.Run("boundaries inclusive, one outside fails", func(t *testing.T) {
		for _, x := range []float64{20, 200} {
			_, err := tab.At(x)
			assert.NoError(t, err, "boundary %g should resolve", x)
		}
		for _, x := range []float64{19, 201} {
			_, err := tab.At(x)
			assert.True(t, errors.Is(err, ErrOutOfRange), "expected out-of-range for %g, got %v", x, err)
		}
	})

	t.Run("nan fails", func(t *testing.T) {
		_, err := tab.At(math.NaN())
		assert.True(t, errors.Is(err, ErrOutOfRange))
	})
}
