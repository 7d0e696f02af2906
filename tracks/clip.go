package tracks

// Clip returns new track holding observations from [startFrame, endFrame] re-indexed so startFrame becomes frame 1.
// Attributes and operator are not copied. Source track is not modified
func Clip(track *Track, startFrame, endFrame int) *Track {
	clipped := Track{
		objectID:     track.objectID,
		objectType:   track.objectType,
		format:       track.format,
		observations: make(map[int]Geometry),
		attributes:   make(map[int]string),
	}
	for frame, geometry := range track.observations {
		if frame >= startFrame && frame <= endFrame {
			clipped.observations[frame-startFrame+1] = geometry
		}
	}
	return &clipped
}
