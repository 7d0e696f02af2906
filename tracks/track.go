package tracks

import (
	"image/draw"
	"sort"

	"github.com/pkg/errors"
)

// Operator renders track's state onto frame image.
// It receives the track it is bound to, so it always sees the current observations and attributes
type Operator func(track *Track, img draw.Image, frame int) draw.Image

// Track is a sparse trajectory of a single object identity.
//
// Track is not safe for concurrent use: any mutation (appending, interpolation, smoothing)
// must not run concurrently with another mutation or read of the same track.
// Different tracks share nothing and may be processed in parallel.
type Track struct {
	objectID     int64
	objectType   string
	format       Format
	observations map[int]Geometry
	attributes   map[int]string
	operator     func(img draw.Image, frame int) draw.Image
}

// NewTrack creates new empty track. Returns ErrInvalidFormat for unknown geometry encoding
func NewTrack(objectID int64, objectType string, format Format, operator Operator) (*Track, error) {
	parsed, err := ParseFormat(string(format))
	if err != nil {
		return nil, errors.Wrapf(err, "Can't create track for object %d", objectID)
	}
	track := Track{
		objectID:     objectID,
		objectType:   objectType,
		format:       parsed,
		observations: make(map[int]Geometry),
		attributes:   make(map[int]string),
	}
	track.SetOperator(operator)
	return &track, nil
}

// GetObjectID returns track's object identifier
func (track *Track) GetObjectID() int64 {
	return track.objectID
}

// GetObjectType returns track's category label
func (track *Track) GetObjectType() string {
	return track.objectType
}

// GetFormat returns track's geometry encoding
func (track *Track) GetFormat() Format {
	return track.format
}

// SetOperator binds rendering operator to the track. Nil clears it
func (track *Track) SetOperator(operator Operator) {
	if operator == nil {
		track.operator = nil
		return
	}
	track.operator = func(img draw.Image, frame int) draw.Image {
		return operator(track, img, frame)
	}
}

// HasOperator reports whether rendering operator is bound
func (track *Track) HasOperator() bool {
	return track.operator != nil
}

// Render calls bound operator. Without operator the image is returned untouched
func (track *Track) Render(img draw.Image, frame int) draw.Image {
	if track.operator == nil {
		return img
	}
	return track.operator(img, frame)
}

// AppendObservation sets geometry at the given frame. Last write wins
func (track *Track) AppendObservation(frame int, geometry Geometry) error {
	if frame < 0 {
		return errors.Wrapf(ErrNegativeFrame, "Can't append frame %d to object %d", frame, track.objectID)
	}
	track.observations[frame] = geometry
	return nil
}

// AppendAttributes merges per-frame annotations. Text for an already annotated frame is joined with comma
func (track *Track) AppendAttributes(attributes map[int]string) {
	for frame, text := range attributes {
		if existing, ok := track.attributes[frame]; ok {
			track.attributes[frame] = existing + "," + text
		} else {
			track.attributes[frame] = text
		}
	}
}

// Observation returns geometry at the given frame
func (track *Track) Observation(frame int) (Geometry, bool) {
	geometry, ok := track.observations[frame]
	return geometry, ok
}

// Attribute returns annotation at the given frame
func (track *Track) Attribute(frame int) (string, bool) {
	text, ok := track.attributes[frame]
	return text, ok
}

// GetObservations returns track's observations. Be careful: this is not copy of observations, but reference to it
func (track *Track) GetObservations() map[int]Geometry {
	return track.observations
}

// GetAttributes returns track's attributes. Be careful: this is not copy of attributes, but reference to it
func (track *Track) GetAttributes() map[int]string {
	return track.attributes
}

// Clone returns deep copy of track without operator
func (track *Track) Clone() *Track {
	clone := Track{
		objectID:     track.objectID,
		objectType:   track.objectType,
		format:       track.format,
		observations: make(map[int]Geometry, len(track.observations)),
		attributes:   make(map[int]string, len(track.attributes)),
	}
	for frame, geometry := range track.observations {
		clone.observations[frame] = geometry
	}
	for frame, text := range track.attributes {
		clone.attributes[frame] = text
	}
	return &clone
}

// Len returns number of observed frames
func (track *Track) Len() int {
	return len(track.observations)
}

// Frames returns observed frame numbers in ascending order
func (track *Track) Frames() []int {
	return sortedKeys(track.observations)
}

// Span returns first and last observed frames
func (track *Track) Span() (int, int, error) {
	if len(track.observations) == 0 {
		return 0, 0, errors.Wrapf(ErrEmptyTrack, "object %d", track.objectID)
	}
	frames := track.Frames()
	return frames[0], frames[len(frames)-1], nil
}

// Tracklets returns maximal runs of consecutive observed frames
func (track *Track) Tracklets() []Tracklet {
	return Segment(track.observations)
}

// PathLength returns distance travelled by the box center.
// Jumps between tracklets are not counted
func (track *Track) PathLength() float64 {
	total := 0.0
	for _, tracklet := range track.Tracklets() {
		prev := track.observations[tracklet.Start].Rectangle(track.format).Center()
		for frame := tracklet.Start + 1; frame <= tracklet.End; frame++ {
			curr := track.observations[frame].Rectangle(track.format).Center()
			total += euclideanDistance(prev, curr)
			prev = curr
		}
	}
	return total
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
