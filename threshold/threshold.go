// Package threshold implements the clamp-to-zero transform applied to SPC y values.
package threshold

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/galspc/errs"
)

// ClampValue replaces every sample that falls below the threshold.
const ClampValue = 0.0

// Apply returns a copy of y where every value below t is replaced by ClampValue.
//
// Values equal to t are kept. NaN samples compare false against any threshold and are
// passed through unchanged.
//
// A threshold of -Inf clamps nothing and returns y unchanged.
//
// Returns errs.ErrInvalidThreshold if t is NaN or +Inf.
func Apply(y []float64, t float64) ([]float64, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i, v := range y {
		if v < t {
			out[i] = ClampValue
		} else {
			out[i] = v
		}
	}

	return out, nil
}

// Clamped counts the samples of y that Apply would replace.
func Clamped(y []float64, t float64) int {
	n := 0
	for _, v := range y {
		if v < t {
			n++
		}
	}

	return n
}

// Validate reports whether t can be used as a threshold. NaN and +Inf are rejected; -Inf
// is the no-op threshold.
func Validate(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 1) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidThreshold, t)
	}

	return nil
}

// Parse reads a threshold from user input such as a form field.
func Parse(s string) (float64, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidThreshold, s)
	}

	if err := Validate(t); err != nil {
		return 0, err
	}

	return t, nil
}
