package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LdDl/tracklets/trackio"
	"github.com/LdDl/tracklets/tracks"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeFixture writes two tracks: one with a short gap and one with a long gap
func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	short, err := tracks.NewTrack(1, "person", tracks.FormatOriginSize, nil)
	require.NoError(t, err)
	long, err := tracks.NewTrack(2, "car", tracks.FormatTwoPoints, nil)
	require.NoError(t, err)
	for frame := 1; frame <= 30; frame++ {
		if frame < 10 || frame > 14 {
			require.NoError(t, short.AppendObservation(frame, tracks.Geometry{float64(frame), 10, 20, 40}))
		}
		require.NoError(t, long.AppendObservation(frame, tracks.Geometry{0, 0, 5, 5}))
		require.NoError(t, long.AppendObservation(frame+50, tracks.Geometry{50, 50, 60, 60}))
	}
	short.AppendAttributes(map[int]string{3: "walking"})
	path := filepath.Join(dir, "input.json")
	require.NoError(t, trackio.WriteFile(path, []*tracks.Track{short, long}))
	return path
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "trackctl.toml")
	content := "[store]\npath = \"" + filepath.ToSlash(filepath.Join(dir, "tracks.db")) + "\"\n\n[logging]\nlevel = \"error\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSmoothCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	output := filepath.Join(dir, "smoothed.csv")

	_, err := runCommand(t, "--config", writeConfig(t, dir), "smooth", input, output)
	require.NoError(t, err)

	trks, err := trackio.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, trks, 2)
	assert.Equal(t, []tracks.Tracklet{{Start: 1, End: 30}}, trks[0].Tracklets())
	assert.Equal(t, []tracks.Tracklet{{Start: 1, End: 30}, {Start: 51, End: 80}}, trks[1].Tracklets())
	text, ok := trks[0].Attribute(3)
	assert.True(t, ok)
	assert.Equal(t, "walking", text)
}

func TestSmoothCommandMethodFlagIsNormalized(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	output := filepath.Join(dir, "smoothed.json")
	_, err := runCommand(t, "--config", writeConfig(t, dir), "smooth", "--method", "Kalman", input, output)
	require.NoError(t, err)

	trks, err := trackio.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, trks, 2)
	assert.Equal(t, []tracks.Tracklet{{Start: 1, End: 30}}, trks[0].Tracklets())
}

func TestSmoothCommandUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	_, err := runCommand(t, "--config", writeConfig(t, dir), "smooth", "--method", "median", input, filepath.Join(dir, "out.json"))
	assert.Error(t, err)
}

func TestTrackletsCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	out, err := runCommand(t, "--config", writeConfig(t, dir), "tracklets", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Object")
	// person: 1-9 and 15-30, car: 1-30 and 51-80
	assert.Equal(t, 4, strings.Count(out, "person")+strings.Count(out, "car"))
	// 9 + 16 + 30 + 30 frames
	assert.Contains(t, out, "85")
}

func TestClipCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	output := filepath.Join(dir, "clipped.json")
	_, err := runCommand(t, "--config", writeConfig(t, dir), "clip", "--start", "51", "--end", "60", input, output)
	require.NoError(t, err)

	trks, err := trackio.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, trks, 1, "person has no frames in range and is dropped")
	assert.Equal(t, int64(2), trks[0].GetObjectID())
	assert.Equal(t, []tracks.Tracklet{{Start: 1, End: 10}}, trks[0].Tracklets())

	_, err = runCommand(t, "--config", writeConfig(t, dir), "clip", "--start", "10", "--end", "5", input, output)
	assert.Error(t, err)
}

func TestDBCommands(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	cfg := writeConfig(t, dir)

	out, err := runCommand(t, "--config", cfg, "db", "import", "--name", "fixture", input)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.Len(t, id, 36)

	out, err = runCommand(t, "--config", cfg, "db", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "fixture")

	exported := filepath.Join(dir, "exported.csv")
	_, err = runCommand(t, "--config", cfg, "db", "export", id, exported)
	require.NoError(t, err)
	original, err := trackio.ReadFile(input)
	require.NoError(t, err)
	loaded, err := trackio.ReadFile(exported)
	require.NoError(t, err)
	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].GetObservations(), loaded[i].GetObservations())
		assert.Equal(t, original[i].GetAttributes(), loaded[i].GetAttributes())
	}

	_, err = runCommand(t, "--config", cfg, "db", "delete", id)
	require.NoError(t, err)
	_, err = runCommand(t, "--config", cfg, "db", "export", id, exported)
	assert.Error(t, err)
	_, err = runCommand(t, "--config", cfg, "db", "export", "not-a-uuid", exported)
	assert.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir)
	output := filepath.Join(dir, "plot.png")
	_, err := runCommand(t, "--config", writeConfig(t, dir), "plot", "--object", "1", "--channel", "0", input, output)
	require.NoError(t, err)
	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = runCommand(t, "--config", writeConfig(t, dir), "plot", "--object", "99", input, output)
	assert.Error(t, err)
	_, err = runCommand(t, "--config", writeConfig(t, dir), "plot", "--object", "1", "--channel", "4", input, output)
	assert.Error(t, err)
}
