package tracks

import (
	"github.com/pkg/errors"
)

// Format is geometry encoding of track's observations
type Format string

const (
	// FormatOriginSize stores observations as (x, y, width, height)
	FormatOriginSize Format = "origin_size"
	// FormatTwoPoints stores observations as (x1, y1, x2, y2)
	FormatTwoPoints Format = "two_points"
)

// ParseFormat validates the given encoding name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatOriginSize, FormatTwoPoints:
		return Format(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidFormat, "format %q", s)
	}
}

func (format Format) String() string {
	return string(format)
}
