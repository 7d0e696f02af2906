package tracks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameIndex(t *testing.T) {
	first := mustTrack(t, 5, FormatOriginSize)
	second := mustTrack(t, 2, FormatOriginSize)
	for _, frame := range []int{1, 2, 3} {
		_ = first.AppendObservation(frame, Geometry{})
	}
	for _, frame := range []int{3, 4} {
		_ = second.AppendObservation(frame, Geometry{})
	}

	index := NewFrameIndex([]*Track{first, second})
	if index.MaxFrame() != 4 {
		t.Errorf("Expected max frame 4, got %d", index.MaxFrame())
	}
	if diff := cmp.Diff([]int64{2, 5}, index.Objects(3)); diff != "" {
		t.Errorf("Objects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{5}, index.Objects(1)); diff != "" {
		t.Errorf("Objects mismatch (-want +got):\n%s", diff)
	}
	if got := index.Objects(10); len(got) != 0 {
		t.Errorf("Expected no objects at frame 10, got %v", got)
	}
}

func TestFrameIndexEmpty(t *testing.T) {
	index := NewFrameIndex(nil)
	if index.MaxFrame() != -1 {
		t.Errorf("Expected max frame -1, got %d", index.MaxFrame())
	}
}
