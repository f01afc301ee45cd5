package processor

import (
	"image"
	"image/color"
)

// ClassifyImage decides whether img is a single-color frame. It returns
// VerdictUniform when every pixel carries the same channel tuple (alpha
// included) and VerdictKeep on the first mismatch. The caller guarantees a
// non-empty image; zero-area decodes are rejected before classification.
//
// The scan exits on the first differing pixel, so real photographs resolve
// after a handful of comparisons regardless of resolution. Only a truly
// uniform frame costs a full pass.
func ClassifyImage(img image.Image) Verdict {
	switch src := img.(type) {
	case *image.RGBA:
		return classifyPix(src.Pix, src.Stride, src.Rect, 4)
	case *image.NRGBA:
		return classifyPix(src.Pix, src.Stride, src.Rect, 4)
	case *image.RGBA64:
		return classifyPix(src.Pix, src.Stride, src.Rect, 8)
	case *image.NRGBA64:
		return classifyPix(src.Pix, src.Stride, src.Rect, 8)
	case *image.Gray:
		return classifyPix(src.Pix, src.Stride, src.Rect, 1)
	case *image.Gray16:
		return classifyPix(src.Pix, src.Stride, src.Rect, 2)
	case *image.CMYK:
		return classifyPix(src.Pix, src.Stride, src.Rect, 4)
	default:
		return classifyGeneric(img)
	}
}

// classifyPix walks raw pixel storage row by row, comparing each pixel's
// bpp-byte tuple against the first pixel of the image.
func classifyPix(pix []byte, stride int, rect image.Rectangle, bpp int) Verdict {
	width := rect.Dx()
	height := rect.Dy()

	ref := pix[:bpp]
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*bpp]
		for x := 0; x < width; x++ {
			px := row[x*bpp : x*bpp+bpp]
			for c := 0; c < bpp; c++ {
				if px[c] != ref[c] {
					return VerdictKeep
				}
			}
		}
	}

	return VerdictUniform
}

// classifyGeneric handles every decoded type without a raw-Pix case
// (YCbCr from JPEG, NYCbCrA from WebP, Paletted from GIF) by comparing
// stored channel tuples. Slower per pixel, but the early exit still applies.
func classifyGeneric(img image.Image) Verdict {
	bounds := img.Bounds()
	ref := channelTuple(img.At(bounds.Min.X, bounds.Min.Y))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if channelTuple(img.At(x, y)) != ref {
				return VerdictKeep
			}
		}
	}

	return VerdictUniform
}

// channelTuple reads the channels a color actually stores. Comparing
// premultiplied RGBA() values instead would collapse distinct tuples at low
// alpha (every fully transparent pixel looks the same), so each concrete
// color type is unpacked directly; only unknown types fall back to RGBA().
func channelTuple(c color.Color) [4]uint32 {
	switch c := c.(type) {
	case color.RGBA:
		return [4]uint32{uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)}
	case color.NRGBA:
		return [4]uint32{uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)}
	case color.RGBA64:
		return [4]uint32{uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)}
	case color.NRGBA64:
		return [4]uint32{uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)}
	case color.Gray:
		return [4]uint32{uint32(c.Y), 0, 0, 0}
	case color.Gray16:
		return [4]uint32{uint32(c.Y), 0, 0, 0}
	case color.YCbCr:
		return [4]uint32{uint32(c.Y), uint32(c.Cb), uint32(c.Cr), 0}
	case color.NYCbCrA:
		return [4]uint32{uint32(c.Y), uint32(c.Cb), uint32(c.Cr), uint32(c.A)}
	case color.CMYK:
		return [4]uint32{uint32(c.C), uint32(c.M), uint32(c.Y), uint32(c.K)}
	case color.Alpha:
		return [4]uint32{uint32(c.A), 0, 0, 0}
	case color.Alpha16:
		return [4]uint32{uint32(c.A), 0, 0, 0}
	default:
		r, g, b, a := c.RGBA()
		return [4]uint32{r, g, b, a}
	}
}
