package rgb2gray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/rgb2gray/pkg/video"
)

func TestConvert_PaddingUntouched(t *testing.T) {
	in := video.NewFrameLayout(video.FormatBGRx, 3, 2, 16)
	out := video.NewFrameLayout(video.FormatGray8, 3, 2, 4)

	src := bgrxFrame(in, 0, 0, 255)
	// Garbage in the input padding must not be read.
	for y := 0; y < 2; y++ {
		for i := 12; i < 16; i++ {
			src[y*in.Stride+i] = 0xEE
		}
	}
	dst := []byte{
		0, 0, 0, 0xAA,
		0, 0, 0, 0xAA,
	}

	require.NoError(t, Convert(in, out, src, dst))
	assert.Equal(t, []byte{
		76, 76, 76, 0xAA,
		76, 76, 76, 0xAA,
	}, dst)
}

func TestConvert_BGRxKeepsPadByte(t *testing.T) {
	l := video.NewFrameLayout(video.FormatBGRx, 1, 1, 4)
	src := []byte{255, 0, 0, 0x42}
	dst := []byte{0, 0, 0, 0x99}

	require.NoError(t, Convert(l, l, src, dst))
	assert.Equal(t, []byte{29, 29, 29, 0x99}, dst)
}

func TestConvert_ShorterBuffersConvertFewerRows(t *testing.T) {
	in := video.NewFrameLayout(video.FormatBGRx, 2, 4, 4)
	out := video.NewFrameLayout(video.FormatGray8, 2, 4, 4)

	// One row each: length is a multiple of the stride on both sides.
	src := bgrxFrame(video.NewFrameLayout(video.FormatBGRx, 2, 1, 4), 255, 255, 255)
	dst := make([]byte, out.Stride)

	require.NoError(t, Convert(in, out, src, dst))
	assert.Equal(t, []byte{255, 255, 0, 0}, dst)
}

func TestConvert_Errors(t *testing.T) {
	bgrx := video.NewFrameLayout(video.FormatBGRx, 4, 2, 4)
	gray := video.NewFrameLayout(video.FormatGray8, 4, 2, 4)

	tests := []struct {
		name    string
		in, out video.FrameLayout
		src     []byte
		dst     []byte
		wantErr error
	}{
		{"gray input", gray, gray, make([]byte, 8), make([]byte, 8), ErrUnsupportedFormat},
		{"unknown output", bgrx, video.FrameLayout{Width: 4, Height: 2, Stride: 4}, make([]byte, 32), make([]byte, 8), ErrUnsupportedFormat},
		{"input not a stride multiple", bgrx, gray, make([]byte, 20), make([]byte, 8), ErrBufferLayout},
		{"output not a stride multiple", bgrx, gray, make([]byte, 32), make([]byte, 9), ErrBufferLayout},
		{"row count differs", bgrx, gray, make([]byte, 32), make([]byte, 12), ErrBufferLayout},
		{"width changes", bgrx, video.NewFrameLayout(video.FormatGray8, 3, 2, 4), make([]byte, 32), make([]byte, 8), ErrBufferLayout},
		{"input stride below line", video.FrameLayout{Format: video.FormatBGRx, Width: 4, Height: 2, Stride: 8}, gray, make([]byte, 16), make([]byte, 8), ErrBufferLayout},
		{"zero stride", video.FrameLayout{Format: video.FormatBGRx, Width: 4, Height: 2}, gray, make([]byte, 32), make([]byte, 8), ErrBufferLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]byte(nil), tt.dst...)
			err := Convert(tt.in, tt.out, tt.src, tt.dst)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, tt.dst, "output must be unchanged on error")
		})
	}
}

func TestConvert_BGRxIdempotent(t *testing.T) {
	l := video.NewFrameLayout(video.FormatBGRx, 5, 3, 32)

	src := make([]byte, l.Size())
	for i := range src {
		src[i] = uint8(i*37 + 11)
	}

	first := append([]byte(nil), src...)
	require.NoError(t, Convert(l, l, src, first))

	second := append([]byte(nil), first...)
	require.NoError(t, Convert(l, l, first, second))

	assert.Equal(t, first, second)
	// Padding past the 20-byte line is carried through untouched.
	assert.Equal(t, src[20:32], second[20:32])
}
