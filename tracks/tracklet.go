package tracks

// Tracklet is an inclusive range of consecutive observed frames
type Tracklet struct {
	Start int
	End   int
}

// Len returns number of frames in tracklet
func (tracklet Tracklet) Len() int {
	return tracklet.End - tracklet.Start + 1
}

// Contains reports whether frame is inside tracklet
func (tracklet Tracklet) Contains(frame int) bool {
	return frame >= tracklet.Start && frame <= tracklet.End
}

// Segment splits keys of frame-keyed mapping into maximal runs of consecutive integers.
// Runs are sorted ascending. Empty mapping gives empty result
func Segment[V any](frames map[int]V) []Tracklet {
	keys := sortedKeys(frames)
	if len(keys) == 0 {
		return []Tracklet{}
	}
	tracklets := make([]Tracklet, 0, 1)
	current := Tracklet{Start: keys[0], End: keys[0]}
	for _, frame := range keys[1:] {
		if frame-current.End > 1 {
			tracklets = append(tracklets, current)
			current = Tracklet{Start: frame}
		}
		current.End = frame
	}
	return append(tracklets, current)
}
