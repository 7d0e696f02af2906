package tracks

import (
	"image"
	"math"
)

// Geometry is a single observation in the owning track's Format.
// For FormatOriginSize it is (x, y, width, height), for FormatTwoPoints it is (x1, y1, x2, y2).
type Geometry [4]float64

// Rectangle converts geometry in the given format into origin/size rectangle
func (g Geometry) Rectangle(format Format) Rectangle {
	if format == FormatTwoPoints {
		return Rectangle{
			X:      g[0],
			Y:      g[1],
			Width:  g[2] - g[0],
			Height: g[3] - g[1],
		}
	}
	return Rectangle{
		X:      g[0],
		Y:      g[1],
		Width:  g[2],
		Height: g[3],
	}
}

// Convert re-encodes geometry from one format to another
func (g Geometry) Convert(from, to Format) Geometry {
	if from == to {
		return g
	}
	return g.Rectangle(from).Geometry(to)
}

func lerpGeometry(from, to Geometry, step, steps int) Geometry {
	var out Geometry
	for i := range out {
		delta := (to[i] - from[i]) / float64(steps)
		out[i] = from[i] + float64(step)*delta
	}
	return out
}

type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// ImageRect rounds rectangle to integer image coordinates.
// No clamping to image bounds is done: callers must intersect with their frame themselves
func (rect Rectangle) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Round(rect.X)),
		int(math.Round(rect.Y)),
		int(math.Round(rect.X+rect.Width)),
		int(math.Round(rect.Y+rect.Height)),
	)
}

// Geometry encodes rectangle in the given format
func (rect Rectangle) Geometry(format Format) Geometry {
	if format == FormatTwoPoints {
		return Geometry{rect.X, rect.Y, rect.X + rect.Width, rect.Y + rect.Height}
	}
	return Geometry{rect.X, rect.Y, rect.Width, rect.Height}
}

// Center returns rectangle's center
func (rect Rectangle) Center() Point {
	return Point{
		X: rect.X + rect.Width/2.0,
		Y: rect.Y + rect.Height/2.0,
	}
}

type Point struct {
	X float64
	Y float64
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(float64(p1.X-p2.X), 2) + math.Pow(float64(p1.Y-p2.Y), 2))
}
