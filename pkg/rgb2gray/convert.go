package rgb2gray

import (
	"fmt"

	"github.com/user/rgb2gray/pkg/video"
)

// Convert walks src row by row and writes the grey version of every pixel
// into dst. src must be BGRx; dst may be BGRx (luma replicated into B, G and
// R, the x byte kept) or GRAY8. Bytes past the tight line width of either
// buffer are neither read nor written.
//
// in and out must have the same width, and src and dst the same number of
// rows; otherwise Convert returns ErrBufferLayout. All layout checks run
// before the first write, so on error dst is unchanged. src and dst must not
// overlap.
func Convert(in, out video.FrameLayout, src, dst []byte) error {
	if in.Format != video.FormatBGRx || (out.Format != video.FormatBGRx && out.Format != video.FormatGray8) {
		return fmt.Errorf("%w: %s to %s", ErrUnsupportedFormat, in.Format, out.Format)
	}
	if err := checkBuffers(in, out, src, dst); err != nil {
		return err
	}

	width := in.Width
	rows := len(src) / in.Stride

	switch out.Format {
	case video.FormatBGRx:
		for y := 0; y < rows; y++ {
			inLine := src[y*in.Stride : y*in.Stride+width*4]
			outLine := dst[y*out.Stride : y*out.Stride+width*4]
			for x := 0; x < len(inLine); x += 4 {
				gray := Luma(inLine[x], inLine[x+1], inLine[x+2])
				outLine[x] = gray
				outLine[x+1] = gray
				outLine[x+2] = gray
			}
		}
	case video.FormatGray8:
		for y := 0; y < rows; y++ {
			inLine := src[y*in.Stride : y*in.Stride+width*4]
			outLine := dst[y*out.Stride : y*out.Stride+width]
			for x := range outLine {
				p := inLine[x*4 : x*4+3]
				outLine[x] = Luma(p[0], p[1], p[2])
			}
		}
	}
	return nil
}

func checkBuffers(in, out video.FrameLayout, src, dst []byte) error {
	if in.Stride <= 0 || out.Stride <= 0 {
		return fmt.Errorf("%w: non-positive stride (in %d, out %d)", ErrBufferLayout, in.Stride, out.Stride)
	}
	if len(src)%in.Stride != 0 {
		return fmt.Errorf("%w: input length %d is not a multiple of stride %d", ErrBufferLayout, len(src), in.Stride)
	}
	if len(dst)%out.Stride != 0 {
		return fmt.Errorf("%w: output length %d is not a multiple of stride %d", ErrBufferLayout, len(dst), out.Stride)
	}
	if inRows, outRows := len(src)/in.Stride, len(dst)/out.Stride; inRows != outRows {
		return fmt.Errorf("%w: input has %d rows, output has %d", ErrBufferLayout, inRows, outRows)
	}
	if in.Width < 0 || in.Width != out.Width {
		return fmt.Errorf("%w: width changes from %d to %d", ErrBufferLayout, in.Width, out.Width)
	}
	if in.LineBytes() > in.Stride {
		return fmt.Errorf("%w: input line %d bytes exceeds stride %d", ErrBufferLayout, in.LineBytes(), in.Stride)
	}
	if out.LineBytes() > out.Stride {
		return fmt.Errorf("%w: output line %d bytes exceeds stride %d", ErrBufferLayout, out.LineBytes(), out.Stride)
	}
	return nil
}
