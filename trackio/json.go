package trackio

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/LdDl/tracklets/tracks"
)

type document struct {
	Tracks []trackDocument `json:"tracks"`
}

type trackDocument struct {
	ObjectID     int64                   `json:"object_id"`
	ObjectType   string                  `json:"object_type"`
	Format       string                  `json:"format"`
	Observations map[int]tracks.Geometry `json:"observations"`
	Attributes   map[int]string          `json:"attributes,omitempty"`
}

// EncodeJSON writes tracks as a single JSON document ordered by object id
func EncodeJSON(w io.Writer, trks []*tracks.Track) error {
	doc := document{
		Tracks: make([]trackDocument, 0, len(trks)),
	}
	for _, track := range sortedByID(trks) {
		doc.Tracks = append(doc.Tracks, trackDocument{
			ObjectID:     track.GetObjectID(),
			ObjectType:   track.GetObjectType(),
			Format:       track.GetFormat().String(),
			Observations: track.GetObservations(),
			Attributes:   track.GetAttributes(),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "Can't encode tracks")
}

// DecodeJSON reads document written by EncodeJSON
func DecodeJSON(r io.Reader) ([]*tracks.Track, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "Can't decode tracks")
	}
	trks := make([]*tracks.Track, 0, len(doc.Tracks))
	for _, item := range doc.Tracks {
		track, err := tracks.NewTrack(item.ObjectID, item.ObjectType, tracks.Format(item.Format), nil)
		if err != nil {
			return nil, err
		}
		for frame, geometry := range item.Observations {
			if err := track.AppendObservation(frame, geometry); err != nil {
				return nil, err
			}
		}
		track.AppendAttributes(item.Attributes)
		trks = append(trks, track)
	}
	return trks, nil
}

func sortedByID(trks []*tracks.Track) []*tracks.Track {
	sorted := append([]*tracks.Track(nil), trks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetObjectID() < sorted[j].GetObjectID()
	})
	return sorted
}
