// Package portrait turns portrait photographs into round, transparent-cornered
// thumbnails.
package portrait

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp" // register WebP sources

	"github.com/BeatGlow/portrait/draw"
	"github.com/BeatGlow/portrait/pixel"
)

// DefaultSize is the thumbnail size used by the visualization.
var DefaultSize = image.Pt(50, 50)

// Transform decodes the image at inputPath, cuts a round portrait of the given
// size from its center and writes it as a PNG to outputPath, replacing any
// existing file.
func Transform(inputPath, outputPath string, size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return ErrInvalidSize
	}

	src, err := imaging.Open(inputPath)
	if err != nil {
		return &DecodeError{Path: inputPath, Err: err}
	}

	log := logrus.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
	})
	log.WithField("bounds", src.Bounds()).Debug("portrait: decoded source")

	out := Round(src, size)

	f, err := os.Create(outputPath)
	if err != nil {
		return &EncodeError{Path: outputPath, Err: err}
	}
	if err = imaging.Encode(f, out, imaging.PNG); err != nil {
		_ = f.Close()
		return &EncodeError{Path: outputPath, Err: err}
	}
	if err = f.Close(); err != nil {
		return &EncodeError{Path: outputPath, Err: err}
	}

	log.WithField("size", out.Bounds().Size()).Debug("portrait: wrote thumbnail")
	return nil
}

// Round center-crops src to a square, resizes it to size with a Lanczos filter and
// masks it with the inscribed ellipse. Pixels outside the ellipse have alpha 0 but
// keep the resized color. A size that is not positive in both dimensions yields
// an empty image.
func Round(src image.Image, size image.Point) *image.NRGBA {
	if size.X <= 0 || size.Y <= 0 {
		return &image.NRGBA{}
	}

	crop := CenterSquare(src.Bounds())
	logrus.WithFields(logrus.Fields{
		"bounds": src.Bounds(),
		"crop":   crop,
	}).Debug("portrait: center crop")

	resized := imaging.Resize(imaging.Crop(src, crop), size.X, size.Y, imaging.Lanczos)

	out := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Paste(out, image.Point{}, resized)
	pixel.PutAlpha(out, CircleMask(size))
	return out
}

// CenterSquare returns the largest square inside r that removes equal margins
// from the longer side. When the margin is odd the extra pixel is taken from the
// right (or bottom) side.
func CenterSquare(r image.Rectangle) image.Rectangle {
	var (
		w    = r.Dx()
		h    = r.Dy()
		side = min(w, h)
		p    = r.Min.Add(image.Pt((w-side)/2, (h-side)/2))
	)
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(side, side))}
}

// CircleMask returns a mask of the given size that is opaque inside the inscribed
// ellipse and transparent elsewhere.
func CircleMask(size image.Point) *pixel.Mask {
	mask := pixel.NewMask(size.X, size.Y)
	mask.Clear()
	draw.FilledEllipse(mask, mask.Bounds(), color.Alpha{A: 0xff})
	return mask
}
