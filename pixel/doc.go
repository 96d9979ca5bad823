// Package pixel implements the single-channel mask images used to cut portraits.
//
// This package provides image types compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
