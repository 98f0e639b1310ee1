package video

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameLayout_Sizes(t *testing.T) {
	tests := []struct {
		name       string
		format     PixelFormat
		width      int
		height     int
		align      int
		wantStride int
		wantSize   int
	}{
		{"BGRx 320x240", FormatBGRx, 320, 240, 4, 1280, 307200},
		{"GRAY8 320x240", FormatGray8, 320, 240, 4, 320, 76800},
		{"GRAY8 odd width, align 4", FormatGray8, 321, 2, 4, 324, 648},
		{"GRAY8 odd width, align 1", FormatGray8, 321, 2, 1, 321, 642},
		{"GRAY8 odd width, align 16", FormatGray8, 321, 2, 16, 336, 672},
		{"GRAY8 zero align uses default", FormatGray8, 321, 2, 0, 324, 648},
		{"BGRx odd width, align 16", FormatBGRx, 3, 1, 16, 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewFrameLayout(tt.format, tt.width, tt.height, tt.align)
			assert.Equal(t, tt.wantStride, l.Stride)
			assert.Equal(t, tt.wantSize, l.Size())
			assert.NoError(t, l.Validate())
		})
	}
}

func TestFrameLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		layout FrameLayout
	}{
		{"unknown format", FrameLayout{Width: 2, Height: 2, Stride: 8}},
		{"zero width", FrameLayout{Format: FormatBGRx, Height: 2, Stride: 8}},
		{"negative height", FrameLayout{Format: FormatBGRx, Width: 2, Height: -1, Stride: 8}},
		{"stride below line", FrameLayout{Format: FormatBGRx, Width: 2, Height: 2, Stride: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.layout.Validate(), ErrInvalidCaps)
		})
	}
}

func TestFrameLayout_Overflow(t *testing.T) {
	tests := []struct {
		name   string
		layout FrameLayout
	}{
		{"size past int range", NewFrameLayout(FormatBGRx, MaxDimension, MaxDimension, 4)},
		{"line past int range", NewFrameLayout(FormatBGRx, math.MaxInt, 1, 4)},
		{"alignment past int range", NewFrameLayout(FormatGray8, math.MaxInt-1, 1, 16)},
		{"stride times height", FrameLayout{Format: FormatGray8, Width: 1, Height: 2, Stride: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.layout.Validate(), ErrInvalidCaps)
		})
	}
}

func TestLayoutFromCaps_MaxTemplateSizeRejected(t *testing.T) {
	caps := RawCaps(FormatBGRx, MaxDimension, MaxDimension, Fraction{Num: 30, Den: 1})

	_, err := LayoutFromCaps(caps, 4)
	assert.ErrorIs(t, err, ErrInvalidCaps)
}

func TestLayoutFromCaps(t *testing.T) {
	l, err := LayoutFromCaps(RawCaps(FormatGray8, 321, 10, Fraction{Num: 25, Den: 1}), 4)
	require.NoError(t, err)

	assert.Equal(t, FormatGray8, l.Format)
	assert.Equal(t, 321, l.Width)
	assert.Equal(t, 10, l.Height)
	assert.Equal(t, 324, l.Stride)
	assert.Equal(t, Fraction{Num: 25, Den: 1}, l.Framerate)
	assert.Equal(t, "GRAY8 321x10 stride=324", l.String())
}

func TestLayoutFromCaps_DefaultFramerate(t *testing.T) {
	l, err := LayoutFromCaps(MustParseCaps("video/x-raw, format=BGRx, width=4, height=4"), 4)
	require.NoError(t, err)
	assert.Equal(t, Fraction{Num: 0, Den: 1}, l.Framerate)
}

func TestLayoutFromCaps_Errors(t *testing.T) {
	tests := []struct {
		name string
		caps Caps
	}{
		{"empty", nil},
		{"two structures", MustParseCaps("video/x-raw, format=BGRx, width=4, height=4; video/x-raw, format=GRAY8, width=4, height=4")},
		{"wrong media type", MustParseCaps("video/x-bayer, format=BGRx, width=4, height=4")},
		{"not fixed", MustParseCaps("video/x-raw, format=BGRx, width=[ 1, 8 ], height=4")},
		{"missing format", MustParseCaps("video/x-raw, width=4, height=4")},
		{"unknown format", MustParseCaps("video/x-raw, format=I420, width=4, height=4")},
		{"missing width", MustParseCaps("video/x-raw, format=BGRx, height=4")},
		{"missing height", MustParseCaps("video/x-raw, format=BGRx, width=4")},
		{"zero width", MustParseCaps("video/x-raw, format=BGRx, width=0, height=4")},
		{"width as string", MustParseCaps("video/x-raw, format=BGRx, width=(string)4, height=4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LayoutFromCaps(tt.caps, 4)
			assert.ErrorIs(t, err, ErrInvalidCaps)
		})
	}
}

func TestRawCaps(t *testing.T) {
	caps := RawCaps(FormatBGRx, 320, 240, Fraction{Num: 30, Den: 1})
	assert.True(t, caps.IsFixed())
	assert.Equal(t,
		"video/x-raw, format=(string)BGRx, width=(int)320, height=(int)240, framerate=(fraction)30/1",
		caps.String())
}
