package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for end := x + w; x < end; x++ {
		dst.Set(x, y, c)
	}
}

// FilledEllipse draws the ellipse inscribed in rect, touching the midpoints
// of all four edges.
//
// Pixel (x, y), relative to rect.Min, is filled when
//
//	(x-w/2)²/(w/2)² + (y-h/2)²/(h/2)² <= 1
//
// evaluated exactly in integers. Edges are hard: no anti-aliasing is applied.
func FilledEllipse(dst Image, rect image.Rectangle, c color.Color) {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		// The span on each row is symmetric around x = w/2.
		x0 := -1
		for x := 0; x <= w/2; x++ {
			if InEllipse(x, y, w, h) {
				x0 = x
				break
			}
		}
		if x0 < 0 {
			continue
		}
		// Column x mirrors to w-x, which for x0 == 0 lies just outside rect.
		x1 := min(w-x0, w-1)
		HorizontalLine(dst, rect.Min.X+x0, rect.Min.Y+y, x1-x0+1, c)
	}
}

// InEllipse reports if pixel (x, y) lies inside the ellipse inscribed in a
// w×h box with its top-left corner at the origin.
func InEllipse(x, y, w, h int) bool {
	var (
		dx = int64(2*x - w)
		dy = int64(2*y - h)
		ww = int64(w) * int64(w)
		hh = int64(h) * int64(h)
	)
	return dx*dx*hh+dy*dy*ww <= ww*hh
}
