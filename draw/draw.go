// Package draw provides image composition and shape primitives used to build
// portrait masks and canvases.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Image is an alias for [golang.org/x/image/draw.Image].
type Image = draw.Image

// Paste copies all of src onto dst with its top-left corner at dp, replacing
// the destination pixels (including their alpha).
func Paste(dst Image, dp image.Point, src image.Image) {
	draw.Copy(dst, dp, src, src.Bounds(), draw.Src, nil)
}
