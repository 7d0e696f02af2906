package tracks

import (
	"sort"
)

// FrameIndex lists object identifiers present at every frame.
// It is a snapshot: later changes to tracks are not reflected
type FrameIndex struct {
	objects  map[int][]int64
	maxFrame int
}

// NewFrameIndex builds index over observations of the given tracks
func NewFrameIndex(tracks []*Track) *FrameIndex {
	index := FrameIndex{
		objects:  make(map[int][]int64),
		maxFrame: -1,
	}
	for _, track := range tracks {
		for frame := range track.observations {
			index.objects[frame] = append(index.objects[frame], track.objectID)
			index.maxFrame = max(index.maxFrame, frame)
		}
	}
	for frame := range index.objects {
		ids := index.objects[frame]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return &index
}

// Objects returns ascending object identifiers observed at frame
func (index *FrameIndex) Objects(frame int) []int64 {
	return index.objects[frame]
}

// MaxFrame returns the last frame with any observation, -1 for empty index
func (index *FrameIndex) MaxFrame() int {
	return index.maxFrame
}
