package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/galspc/format"
)

func TestDetectUnit(t *testing.T) {
	tests := []struct {
		name string
		exp  format.ExperimentType
		x    []float64
		want format.Unit
	}{
		{"FT-IR wavenumbers", format.ExperimentFTIR, []float64{450, 3900}, format.UnitWavenumber},
		{"FT-IR boundaries inclusive", format.ExperimentFTIR, []float64{400, 4000}, format.UnitWavenumber},
		{"FT-IR beyond range falls through", format.ExperimentFTIR, []float64{400, 4001}, format.UnitUnknown},
		{"FT-IR inside generic nm range still wavenumber", format.ExperimentFTIR, []float64{450, 900}, format.UnitWavenumber},
		{"FT-IR narrow low range uses generic nm", format.ExperimentFTIR, []float64{250, 900}, format.UnitNanometer},
		{"NIR wavelengths", format.ExperimentNIR, []float64{1100, 2500}, format.UnitNanometer},
		{"NIR outside its rule", format.ExperimentNIR, []float64{4000, 10000}, format.UnitUnknown},
		{"general nm range", format.ExperimentGeneral, []float64{300, 900}, format.UnitNanometer},
		{"general wide range is not FT-IR", format.ExperimentGeneral, []float64{450, 3900}, format.UnitUnknown},
		{"micrometres", format.ExperimentGeneral, []float64{2.5, 25}, format.UnitMicrometer},
		{"no rule", format.ExperimentGeneral, []float64{40, 55}, format.UnitUnknown},
		{"descending axis", format.ExperimentFTIR, []float64{3900, 2000, 450}, format.UnitWavenumber},
		{"empty", format.ExperimentFTIR, nil, format.UnitUnknown},
		{"NaN", format.ExperimentGeneral, []float64{300, math.NaN(), 900}, format.UnitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectUnit(tt.exp, tt.x))
		})
	}
}

func TestRules_Precedence(t *testing.T) {
	r := Rules()

	require.Len(t, r, 4)
	require.Equal(t, format.ExperimentFTIR, r[0].Experiment)
	require.False(t, r[0].AnyExperiment)
	require.Equal(t, format.ExperimentNIR, r[1].Experiment)
	require.True(t, r[2].AnyExperiment)
	require.True(t, r[3].AnyExperiment)

	// Rules() hands out a copy; mutating it must not change detection.
	r[0].Unit = format.UnitMicrometer
	require.Equal(t, format.UnitWavenumber, DetectUnit(format.ExperimentFTIR, []float64{500, 600}))
}
