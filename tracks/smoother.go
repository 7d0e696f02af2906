package tracks

import (
	"gonum.org/v1/gonum/mat"
)

// Smoother is the interface for per-tracklet trajectory filters.
// Rows of the matrix are consecutive frames of a single tracklet, columns are the 4 geometry channels.
// Implementations smooth rows in place and must not assume anything outside of the given tracklet.
type Smoother interface {
	SmoothTracklet(rows *mat.Dense) error
}

// SmoothOptions configures Smoothen
type SmoothOptions struct {
	// Largest gap filled by interpolation before segmentation.
	// Zero means DefaultMaxGap, negative disables interpolation
	MaxGap int
	// Filter applied to every tracklet. Default is Gaussian with sigma 10
	Smoother Smoother
}

// DefaultSmoothOptions returns interpolation up to 10 frames and Gaussian smoothing with sigma 10
func DefaultSmoothOptions() SmoothOptions {
	return SmoothOptions{
		MaxGap:   DefaultMaxGap,
		Smoother: NewGaussianSmoother(),
	}
}

// NewSmoother creates smoother by method name ("gaussian" or "kalman") with default parameters
func NewSmoother(method string) (Smoother, error) {
	switch method {
	case "", "gaussian":
		return NewGaussianSmoother(), nil
	case "kalman":
		return NewKalmanSmoother(), nil
	default:
		return nil, errorUnknownSmoother(method)
	}
}

// tracklet table helpers

func trackletRows(track *Track, tracklet Tracklet) *mat.Dense {
	rows := mat.NewDense(tracklet.Len(), 4, nil)
	for frame := tracklet.Start; frame <= tracklet.End; frame++ {
		geometry := track.observations[frame]
		rows.SetRow(frame-tracklet.Start, geometry[:])
	}
	return rows
}

func writeTrackletRows(track *Track, tracklet Tracklet, rows *mat.Dense) {
	for frame := tracklet.Start; frame <= tracklet.End; frame++ {
		var geometry Geometry
		copy(geometry[:], rows.RawRowView(frame-tracklet.Start))
		track.observations[frame] = geometry
	}
}
