package material

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignStress(t *testing.T) {
	t.Run("tabulated temperatures resolve exactly", func(t *testing.T) {
		test := []struct {
			grade Grade
			tempC float64
			want  float64
		}{
			{Grade14404, 20, 147},
			{Grade14404, 100, 120},
			{Grade14404, 400, 89},
			{GradeP265GH, 20, 176.7},
			{GradeP265GH, 300, 113.3},
		}
		for _, tt := range test {
			f, err := DesignStress(tt.grade, tt.tempC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f, "%s at %g °C", tt.grade, tt.tempC)
		}
	})

	t.Run("interpolates between breakpoints", func(t *testing.T) {
		f, err := DesignStress(Grade14404, 75)
		require.NoError(t, err)
		assert.InDelta(t, 126, f, 1e-12)

		f, err = DesignStress(GradeP265GH, 60)
		require.NoError(t, err)
		assert.InDelta(t, 176.7+(160.7-176.7)*0.5, f, 1e-12)
	})

	t.Run("never extrapolates", func(t *testing.T) {
		for _, tempC := range []float64{19, 401, -40, 600} {
			_, err := DesignStress(Grade14404, tempC)
			assert.True(t, errors.Is(err, ErrOutOfRange), "expected out-of-range at %g °C, got %v", tempC, err)
		}
	})

	t.Run("unknown grade fails", func(t *testing.T) {
		_, err := DesignStress(Grade(99), 100)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrOutOfRange))
	})
}

func TestParseGrade(t *testing.T) {
	for _, g := range Grades() {
		parsed, err := ParseGrade(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
		assert.True(t, parsed.Valid())
	}
	_, err := ParseGrade("S235JR")
	assert.Error(t, err)
	assert.False(t, Grade(0).Valid())
}

func TestTemperatureRange(t *testing.T) {
	minC, maxC, err := TemperatureRange(Grade14404)
	require.NoError(t, err)
	assert.Equal(t, 20.0, minC)
	assert.Equal(t, 400.0, maxC)

	_, _, err = TemperatureRange(Grade(99))
	assert.Error(t, err)
}
