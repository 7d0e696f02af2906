package tracks

// DefaultMaxGap is the largest frame gap filled by interpolation
const DefaultMaxGap = 10

// Interpolate fills gaps between consecutive observed frames with linearly interpolated geometry.
// A gap is next-curr for neighbouring observed frames; gaps of 2..maxGap are filled with gap-1 new frames.
// Only frames observed before the call are used as endpoints.
// Returns number of inserted frames
func Interpolate(track *Track, maxGap int) int {
	frames := track.Frames()
	inserted := 0
	for i := 0; i+1 < len(frames); i++ {
		curr, next := frames[i], frames[i+1]
		gap := next - curr
		if gap < 2 || gap > maxGap {
			continue
		}
		from := track.observations[curr]
		to := track.observations[next]
		for step := 1; step < gap; step++ {
			track.observations[curr+step] = lerpGeometry(from, to, step, gap)
			inserted++
		}
	}
	return inserted
}
