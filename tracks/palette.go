package tracks

import (
	"image/color"
)

var palette = [...]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// ColorFor returns stable drawing color for object identifier
func ColorFor(objectID int64) color.RGBA {
	n := int64(len(palette))
	return palette[((objectID%n)+n)%n]
}
