package tracks

import (
	"image"
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correnctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestGeometryRectangle(t *testing.T) {
	originSize := Geometry{10, 20, 30, 40}
	rect := originSize.Rectangle(FormatOriginSize)
	if rect != NewRect(10, 20, 30, 40) {
		t.Errorf("Expected rect %v, got %v", NewRect(10, 20, 30, 40), rect)
	}

	twoPoints := Geometry{10, 20, 40, 60}
	rect = twoPoints.Rectangle(FormatTwoPoints)
	if rect != NewRect(10, 20, 30, 40) {
		t.Errorf("Expected rect %v, got %v", NewRect(10, 20, 30, 40), rect)
	}

	center := rect.Center()
	if center != (Point{X: 25, Y: 40}) {
		t.Errorf("Expected center (25, 40), got %v", center)
	}
}

func TestGeometryConvert(t *testing.T) {
	g := Geometry{10, 20, 30, 40}
	converted := g.Convert(FormatOriginSize, FormatTwoPoints)
	if converted != (Geometry{10, 20, 40, 60}) {
		t.Errorf("Expected [10 20 40 60], got %v", converted)
	}
	back := converted.Convert(FormatTwoPoints, FormatOriginSize)
	if back != g {
		t.Errorf("Expected %v after round trip, got %v", g, back)
	}
	if g.Convert(FormatOriginSize, FormatOriginSize) != g {
		t.Error("Conversion to the same format must be identity")
	}
}

func TestRectangleImageRect(t *testing.T) {
	rect := NewRect(-5.4, 10.6, 20, 30)
	got := rect.ImageRect()
	expected := image.Rect(-5, 11, 15, 41)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
