package processor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestClassifyUniformRGBA(t *testing.T) {
	img := solidRGBA(4, 4, color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, VerdictUniform, ClassifyImage(img))
}

func TestClassifySinglePixel(t *testing.T) {
	img := solidRGBA(1, 1, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	assert.Equal(t, VerdictUniform, ClassifyImage(img))
}

func TestClassifyKeepOnMismatch(t *testing.T) {
	img := solidRGBA(16, 16, color.RGBA{A: 0xff})
	img.SetRGBA(15, 15, color.RGBA{R: 1, A: 0xff})
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func TestClassifyAlphaOnlyDifferenceKeeps(t *testing.T) {
	// Same RGB everywhere, one pixel with a different alpha. The channel
	// tuple comparison covers alpha, so this is not uniform.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
		}
	}
	img.SetNRGBA(2, 2, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xfe})
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func TestClassifyTransparentPixelsStayDistinct(t *testing.T) {
	// With alpha zero everywhere, premultiplied comparison would see every
	// pixel as (0,0,0,0). The stored tuples still differ, so this is Keep.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(3, 0, color.NRGBA{R: 0xff})
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
	assert.Equal(t, VerdictKeep, classifyGeneric(img))
}

func TestClassifyNRGBA64TransparentMismatch(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 4, 4))
	img.SetNRGBA64(2, 1, color.NRGBA64{R: 0xffff, G: 0x1234, B: 0x4321})
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func TestClassifyUniformNRGBA64(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA64(x, y, color.NRGBA64{R: 0x8000, G: 0x8000, B: 0x8000, A: 0x1000})
		}
	}
	assert.Equal(t, VerdictUniform, ClassifyImage(img))
}

func TestClassifyUniformGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0x42
	}
	assert.Equal(t, VerdictUniform, ClassifyImage(img))
}

func TestClassifyGrayMismatch(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	img.Pix[len(img.Pix)-1] = 1
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func TestClassifyUniformYCbCr(t *testing.T) {
	// JPEG decodes to YCbCr, which takes the generic path.
	img := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio444)
	for i := range img.Y {
		img.Y[i] = 0x80
	}
	for i := range img.Cb {
		img.Cb[i] = 0x80
		img.Cr[i] = 0x80
	}
	assert.Equal(t, VerdictUniform, ClassifyImage(img))

	img.Y[len(img.Y)-1] = 0x81
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func TestClassifyUniformPaletted(t *testing.T) {
	palette := color.Palette{color.RGBA{A: 0xff}, color.RGBA{R: 0xff, A: 0xff}}
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	assert.Equal(t, VerdictUniform, ClassifyImage(img))

	img.SetColorIndex(3, 3, 1)
	assert.Equal(t, VerdictKeep, ClassifyImage(img))
}

func BenchmarkClassifyEarlyExit(b *testing.B) {
	img := solidRGBA(1920, 1080, color.RGBA{A: 0xff})
	img.SetRGBA(1, 0, color.RGBA{R: 1, A: 0xff})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ClassifyImage(img) != VerdictKeep {
			b.Fatal("expected keep")
		}
	}
}

func BenchmarkClassifyUniform(b *testing.B) {
	img := solidRGBA(1920, 1080, color.RGBA{A: 0xff})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ClassifyImage(img) != VerdictUniform {
			b.Fatal("expected uniform")
		}
	}
}

func TestClassifyNonZeroOrigin(t *testing.T) {
	// SubImage keeps the parent's storage and a shifted Rect; the scan has
	// to respect bounds, not assume a zero origin.
	parent := solidRGBA(8, 8, color.RGBA{B: 0xff, A: 0xff})
	parent.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})

	sub := parent.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)
	assert.Equal(t, VerdictUniform, classifyGeneric(sub))
}
