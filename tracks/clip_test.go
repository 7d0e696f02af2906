package tracks

import (
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClip(t *testing.T) {
	track := mustTrack(t, 9, FormatTwoPoints)
	for frame := 5; frame <= 10; frame++ {
		_ = track.AppendObservation(frame, Geometry{float64(frame), 0, float64(frame) + 1, 1})
	}
	track.AppendAttributes(map[int]string{5: "entering", 7: "stopped"})
	track.SetOperator(func(tr *Track, img draw.Image, frame int) draw.Image { return img })

	clipped := Clip(track, 5, 10)
	if clipped == track {
		t.Fatal("Clip must return a new track")
	}
	if clipped.GetObjectID() != 9 || clipped.GetObjectType() != "person" || clipped.GetFormat() != FormatTwoPoints {
		t.Errorf("Identity not preserved: %d %s %s", clipped.GetObjectID(), clipped.GetObjectType(), clipped.GetFormat())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, clipped.Frames()); diff != "" {
		t.Errorf("Frames mismatch (-want +got):\n%s", diff)
	}
	for frame := 5; frame <= 10; frame++ {
		want, _ := track.Observation(frame)
		got, _ := clipped.Observation(frame - 4)
		if got != want {
			t.Errorf("Frame %d: expected %v, got %v", frame-4, want, got)
		}
	}
	if len(clipped.GetAttributes()) != 0 {
		t.Errorf("Attributes must not be copied, got %v", clipped.GetAttributes())
	}
	if clipped.HasOperator() {
		t.Error("Operator must not be copied")
	}
	if track.Len() != 6 || len(track.GetAttributes()) != 2 {
		t.Error("Source track must not be modified")
	}
}

func TestClipPartialRange(t *testing.T) {
	track := mustTrack(t, 1, FormatOriginSize)
	for _, frame := range []int{2, 4, 6, 8} {
		_ = track.AppendObservation(frame, Geometry{float64(frame)})
	}
	clipped := Clip(track, 3, 6)
	if diff := cmp.Diff(map[int]Geometry{2: {4}, 4: {6}}, clipped.GetObservations()); diff != "" {
		t.Errorf("Observations mismatch (-want +got):\n%s", diff)
	}

	if empty := Clip(track, 7, 3); empty.Len() != 0 {
		t.Errorf("Reversed range must give empty track, got %d observations", empty.Len())
	}
}
