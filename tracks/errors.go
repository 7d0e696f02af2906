package tracks

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned when track is created with unknown geometry encoding
	ErrInvalidFormat = errors.New("invalid track format")
	// ErrNegativeFrame is returned when observation is appended with negative frame number
	ErrNegativeFrame = errors.New("negative frame number")
	// ErrEmptyTrack is returned by operations which need at least one observation
	ErrEmptyTrack = errors.New("track has no observations")
	// ErrInvalidSigma is returned for non-positive Gaussian parameters
	ErrInvalidSigma = errors.New("sigma and truncate must be positive")
	// ErrUnknownSmoother is returned when smoothing method name is not recognized
	ErrUnknownSmoother = errors.New("unknown smoothing method")
)
