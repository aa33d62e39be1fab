// Package units infers the physical unit of an SPC x axis.
//
// Detection is a fixed-precedence decision table over the experiment type code and the
// x range. Rules overlap; the first matching rule wins, and instrument-specific rules
// are consulted before the generic range rules:
//
//	1. FT-IR and 400 <= x <= 4000   → cm⁻¹
//	2. NIR   and 800 <= x <= 2500   → nm
//	3. any   and 200 <= x <= 1000   → nm
//	4. any   and   2 <= x <= 30     → μm
//	5. otherwise                    → Unknown
package units

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/galspc/format"
)

// Rule is one row of the decision table. A zero Experiment with AnyExperiment set
// matches every experiment type.
type Rule struct {
	Experiment    format.ExperimentType
	AnyExperiment bool
	Min, Max      float64
	Unit          format.Unit
}

// Matches reports whether the rule applies to an experiment type and x range.
func (r Rule) Matches(exp format.ExperimentType, lo, hi float64) bool {
	if !r.AnyExperiment && exp != r.Experiment {
		return false
	}

	return lo >= r.Min && hi <= r.Max
}

// Rules returns the decision table in precedence order.
func Rules() []Rule {
	return []Rule{
		{Experiment: format.ExperimentFTIR, Min: 400, Max: 4000, Unit: format.UnitWavenumber},
		{Experiment: format.ExperimentNIR, Min: 800, Max: 2500, Unit: format.UnitNanometer},
		{AnyExperiment: true, Min: 200, Max: 1000, Unit: format.UnitNanometer},
		{AnyExperiment: true, Min: 2, Max: 30, Unit: format.UnitMicrometer},
	}
}

var rules = Rules()

// DetectUnit returns the unit of an x axis. It never fails: an empty axis, an axis
// containing NaN, or a range no rule covers yields format.UnitUnknown.
func DetectUnit(exp format.ExperimentType, x []float64) format.Unit {
	if len(x) == 0 || floats.HasNaN(x) {
		return format.UnitUnknown
	}

	lo, hi := floats.Min(x), floats.Max(x)
	for _, r := range rules {
		if r.Matches(exp, lo, hi) {
			return r.Unit
		}
	}

	return format.UnitUnknown
}
