package trackio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/LdDl/tracklets/tracks"
)

var (
	// ErrUnsupportedExtension is returned for files other than .json and .csv
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	// ErrInconsistentObject is returned when CSV rows of one object disagree on type or format
	ErrInconsistentObject = errors.New("inconsistent object rows")
)

// ReadFile reads tracks choosing codec by file extension
func ReadFile(path string) ([]*tracks.Track, error) {
	var decode func(*os.File) ([]*tracks.Track, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = func(f *os.File) ([]*tracks.Track, error) { return DecodeJSON(f) }
	case ".csv":
		decode = func(f *os.File) ([]*tracks.Track, error) { return ReadCSV(f) }
	default:
		return nil, errors.Wrapf(ErrUnsupportedExtension, "%q", path)
	}
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "Can't open tracks file")
	}
	defer file.Close()
	return decode(file)
}

// WriteFile writes tracks choosing codec by file extension
func WriteFile(path string, trks []*tracks.Track) error {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		encode = func(f *os.File) error { return EncodeJSON(f, trks) }
	case ".csv":
		encode = func(f *os.File) error { return WriteCSV(f, trks) }
	default:
		return errors.Wrapf(ErrUnsupportedExtension, "%q", path)
	}
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrap(err, "Can't create tracks file")
	}
	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "Can't close tracks file")
}
