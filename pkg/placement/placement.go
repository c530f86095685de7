// Package placement computes where content is drawn on a surface.
package placement

import "image"

// Size is a width and height in float surface units.
type Size struct {
	Width, Height float32
}

// Point is a position in float surface units.
type Point struct {
	X, Y float32
}

// CenterOffset returns the top-left position that centers content on surface.
// Offsets are negative when content is larger than surface, which crops its edges.
// Division truncates toward zero.
func CenterOffset(surface, content image.Point) image.Point {
	return image.Point{
		X: (surface.X - content.X) / 2,
		Y: (surface.Y - content.Y) / 2,
	}
}

// CenterOffsetF is CenterOffset for float coordinate systems.
func CenterOffsetF(surface, content Size) Point {
	return Point{
		X: (surface.Width - content.Width) / 2,
		Y: (surface.Height - content.Height) / 2,
	}
}

// CenterRect returns the rectangle content covers when centered on surface.
func CenterRect(surface, content image.Point) image.Rectangle {
	off := CenterOffset(surface, content)
	return image.Rectangle{Min: off, Max: off.Add(content)}
}

// Cover returns the smallest size with content's aspect ratio that fully covers surface.
// Scaling happens before placement; the result is then centered with CenterOffset.
func Cover(surface, content image.Point) image.Point {
	if content.X <= 0 || content.Y <= 0 || surface.X <= 0 || surface.Y <= 0 {
		return content
	}

	// Compare surface.X/content.X with surface.Y/content.Y without floats.
	if surface.X*content.Y >= surface.Y*content.X {
		// Width bound.
		h := ceilDiv(content.Y*surface.X, content.X)
		return image.Point{X: surface.X, Y: max(h, surface.Y)}
	}
	w := ceilDiv(content.X*surface.Y, content.Y)
	return image.Point{X: max(w, surface.X), Y: surface.Y}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
