package trackio

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/LdDl/tracklets/tracks"
)

var csvHeader = []string{"object_id", "object_type", "format", "frame", "a", "b", "c", "d", "has_attribute", "attribute"}

// WriteCSV writes one row per frame having an observation or an attribute.
// Format: object_id;object_type;format;frame;a;b;c;d;has_attribute;attribute
// Geometry columns are empty for attribute-only frames. A track without frames
// is written as a single row with empty frame column
func WriteCSV(w io.Writer, trks []*tracks.Track) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write(csvHeader)
	if err != nil {
		return errors.Wrap(err, "Can't write CSV header")
	}
	for _, track := range sortedByID(trks) {
		objectID := strconv.FormatInt(track.GetObjectID(), 10)
		frames := annotatedFrames(track)
		if len(frames) == 0 {
			err = writer.Write(objectRow(track, objectID))
			if err != nil {
				return errors.Wrapf(err, "Can't write empty object %s", objectID)
			}
			continue
		}
		for _, frame := range frames {
			row := objectRow(track, objectID)
			row[3] = strconv.Itoa(frame)
			if geometry, ok := track.Observation(frame); ok {
				for i, value := range geometry {
					row[4+i] = strconv.FormatFloat(value, 'g', -1, 64)
				}
			}
			row[8] = "0"
			if text, ok := track.Attribute(frame); ok {
				row[8] = "1"
				row[9] = text
			}
			err = writer.Write(row)
			if err != nil {
				return errors.Wrapf(err, "Can't write frame %d of object %s", frame, objectID)
			}
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush CSV")
}

// ReadCSV reads table written by WriteCSV. Rows of one object must agree on type and format
func ReadCSV(r io.Reader) ([]*tracks.Track, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "Can't read CSV")
	}
	if len(records) == 0 {
		return []*tracks.Track{}, nil
	}
	if records[0][0] == csvHeader[0] {
		records = records[1:]
	}

	byID := make(map[int64]*tracks.Track)
	for i, record := range records {
		line := i + 2
		objectID, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad object id", line)
		}
		track, ok := byID[objectID]
		if !ok {
			track, err = tracks.NewTrack(objectID, record[1], tracks.Format(record[2]), nil)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			byID[objectID] = track
		} else if track.GetObjectType() != record[1] || track.GetFormat().String() != record[2] {
			return nil, errors.Wrapf(ErrInconsistentObject, "line %d: object %d", line, objectID)
		}
		if record[3] == "" {
			continue
		}
		frame, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad frame", line)
		}
		if record[4] != "" {
			var geometry tracks.Geometry
			for c := range geometry {
				geometry[c], err = strconv.ParseFloat(record[4+c], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: bad geometry", line)
				}
			}
			if err := track.AppendObservation(frame, geometry); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
		}
		hasAttribute, err := strconv.ParseBool(record[8])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad has_attribute", line)
		}
		if hasAttribute {
			track.AppendAttributes(map[int]string{frame: record[9]})
		}
	}

	trks := make([]*tracks.Track, 0, len(byID))
	for _, track := range byID {
		trks = append(trks, track)
	}
	return sortedByID(trks), nil
}

func objectRow(track *tracks.Track, objectID string) []string {
	row := make([]string, len(csvHeader))
	row[0] = objectID
	row[1] = track.GetObjectType()
	row[2] = track.GetFormat().String()
	return row
}

func annotatedFrames(track *tracks.Track) []int {
	seen := make(map[int]struct{}, track.Len())
	frames := make([]int, 0, track.Len())
	for frame := range track.GetObservations() {
		seen[frame] = struct{}{}
		frames = append(frames, frame)
	}
	for frame := range track.GetAttributes() {
		if _, ok := seen[frame]; !ok {
			frames = append(frames, frame)
		}
	}
	sort.Ints(frames)
	return frames
}
