package tracks

import (
	"github.com/pkg/errors"
)

// Smoothen fills short gaps, splits track into tracklets and smooths every tracklet independently.
// Observations are replaced in place. Empty track is left as is.
// Applying it twice is legal; the second pass changes values further since the filter is not a projection
func Smoothen(track *Track, options SmoothOptions) error {
	if track.Len() == 0 {
		return nil
	}
	smoother := options.Smoother
	if smoother == nil {
		smoother = NewGaussianSmoother()
	}
	maxGap := options.MaxGap
	if maxGap == 0 {
		maxGap = DefaultMaxGap
	}
	Interpolate(track, maxGap)
	for _, tracklet := range track.Tracklets() {
		rows := trackletRows(track, tracklet)
		err := smoother.SmoothTracklet(rows)
		if err != nil {
			return errors.Wrapf(err, "Can't smooth tracklet [%d, %d] of object %d", tracklet.Start, tracklet.End, track.objectID)
		}
		writeTrackletRows(track, tracklet, rows)
	}
	return nil
}
