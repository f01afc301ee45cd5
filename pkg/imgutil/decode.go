package imgutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a file's signature matches none of
// the supported containers. Callers treat this like any other decode failure.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeKind decodes r as the container identified by kind. The reader must
// be positioned at the start of the file. An image that decodes to zero
// width or zero height is an error, never a valid result.
func DecodeKind(r io.Reader, kind Kind) (image.Image, error) {
	var (
		img image.Image
		err error
	)

	switch kind {
	case KindJPEG:
		img, err = jpeg.Decode(r)
	case KindPNG:
		img, err = png.Decode(r)
	case KindGIF:
		img, err = gif.Decode(r)
	case KindBMP:
		img, err = bmp.Decode(r)
	case KindTIFF:
		img, err = tiff.Decode(r)
	case KindWebP:
		img, err = webp.Decode(r)
	default:
		return nil, ErrUnsupportedFormat
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("decode %s: zero-area image", kind)
	}

	return img, nil
}

// DecodeReader sniffs the container signature and decodes the rest of the
// stream. It exists for callers that cannot seek; file-based callers sniff
// and rewind instead so the decoder sees the full stream.
func DecodeReader(r io.Reader) (image.Image, error) {
	header := make([]byte, HeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	kind, err := DetectHeader(header)
	if err != nil {
		return nil, err
	}
	if kind == KindUnknown {
		return nil, ErrUnsupportedFormat
	}

	return DecodeKind(io.MultiReader(bytes.NewReader(header), r), kind)
}
