package threshold

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/galspc/errs"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		t    float64
		want []float64
	}{
		{"zero threshold", []float64{-5, 0, 3, -0.1}, 0, []float64{0, 0, 3, 0}},
		{"negative threshold", []float64{-150, -50, 10}, -100, []float64{0, -50, 10}},
		{"equal to threshold kept", []float64{1, 2, 3}, 2, []float64{0, 2, 3}},
		{"all above", []float64{5, 6}, 1, []float64{5, 6}},
		{"empty", []float64{}, 1, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.y, tt.t)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClamped(t *testing.T) {
	require.Equal(t, 2, Clamped([]float64{-5, 0, 3, -0.1}, 0))
	require.Equal(t, 0, Clamped([]float64{math.NaN(), 4}, 1))
	require.Equal(t, 0, Clamped(nil, 0))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	y := []float64{-1, 2}
	_, err := Apply(y, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2}, y)
}

func TestApply_Idempotent(t *testing.T) {
	y := []float64{-3, -1, 0, 1, 3}
	once, err := Apply(y, -2)
	require.NoError(t, err)
	twice, err := Apply(once, -2)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestApply_NaNPassesThrough(t *testing.T) {
	got, err := Apply([]float64{math.NaN(), -1}, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got[0]))
	require.Equal(t, 0.0, got[1])
}

func TestApply_InvalidThreshold(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Apply([]float64{1}, bad)
		require.ErrorIs(t, err, errs.ErrInvalidThreshold)
	}
}

func TestApply_NegativeInfinityIsIdentity(t *testing.T) {
	y := []float64{-math.MaxFloat64, -1e300, 0, 5, math.Inf(-1)}

	got, err := Apply(y, math.Inf(-1))
	require.NoError(t, err)
	require.Equal(t, y, got)
	require.Zero(t, Clamped(y, math.Inf(-1)))
}

func TestParse(t *testing.T) {
	got, err := Parse(" -12.5 ")
	require.NoError(t, err)
	require.Equal(t, -12.5, got)

	got, err = Parse("-Inf")
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1))

	for _, bad := range []string{"", "abc", "NaN", "inf", "+Inf"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, errs.ErrInvalidThreshold, bad)
	}
}
