package overlay

// Rect is a pixel-space rectangle in root-window coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// frameRects returns the four border strips for a w by h surface with
// thickness b: top and bottom span the full width, left and right fill the
// gap between them. The interior (b,b)-(w-b,h-b) is never covered.
func frameRects(w, h, b int) [4]Rect {
	return [4]Rect{
		{X: 0, Y: 0, Width: w, Height: b},           // top
		{X: 0, Y: h - b, Width: w, Height: b},       // bottom
		{X: 0, Y: b, Width: b, Height: h - 2*b},     // left
		{X: w - b, Y: b, Width: b, Height: h - 2*b}, // right
	}
}

func rectsIntersect(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
