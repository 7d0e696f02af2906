package tracks

import (
	"github.com/pkg/errors"
)

// reflectIndex maps any index onto [0, n) mirroring about the edges of the first and last samples.
// Indices further than n away are folded repeatedly
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= n {
		return period - 1 - m
	}
	return m
}

func errorUnknownSmoother(method string) error {
	return errors.Wrapf(ErrUnknownSmoother, "method %q", method)
}
