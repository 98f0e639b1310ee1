package video

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// PackImage writes img into a new BGRx buffer laid out as l. The unused
// channel is set to 0xff and row padding is zeroed. The image must match
// the layout dimensions.
func PackImage(img image.Image, l FrameLayout) ([]byte, error) {
	if l.Format != FormatBGRx {
		return nil, fmt.Errorf("pack: layout format %s is not BGRx", l.Format)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != l.Width || b.Dy() != l.Height {
		return nil, fmt.Errorf("pack: image is %dx%d, layout is %dx%d", b.Dx(), b.Dy(), l.Width, l.Height)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	buf := make([]byte, l.Size())
	for y := 0; y < l.Height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+l.Width*4]
		dst := buf[y*l.Stride : y*l.Stride+l.Width*4]
		for x := 0; x < len(src); x += 4 {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = 0xff
		}
	}
	return buf, nil
}

// UnpackImage converts a buffer laid out as l into an image. GRAY8 buffers
// are wrapped without copying; BGRx buffers are copied into an *image.RGBA.
func UnpackImage(buf []byte, l FrameLayout) (image.Image, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if len(buf) < l.Size() {
		return nil, fmt.Errorf("unpack: buffer holds %d bytes, layout needs %d", len(buf), l.Size())
	}

	switch l.Format {
	case FormatGray8:
		return &image.Gray{
			Pix:    buf[:l.Size()],
			Stride: l.Stride,
			Rect:   image.Rect(0, 0, l.Width, l.Height),
		}, nil
	case FormatBGRx:
		img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
		for y := 0; y < l.Height; y++ {
			src := buf[y*l.Stride : y*l.Stride+l.Width*4]
			dst := img.Pix[y*img.Stride : y*img.Stride+l.Width*4]
			for x := 0; x < len(src); x += 4 {
				dst[x+0] = src[x+2]
				dst[x+1] = src[x+1]
				dst[x+2] = src[x+0]
				dst[x+3] = 0xff
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unpack: unsupported format %s", l.Format)
	}
}
