package rgb2gray

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/rgb2gray/pkg/video"
)

func rawCaps(format video.PixelFormat, w, h int) video.Caps {
	return video.RawCaps(format, w, h, video.Fraction{Num: 30, Den: 1})
}

// bgrxFrame builds a packed BGRx frame with every pixel set to b, g, r.
func bgrxFrame(l video.FrameLayout, b, g, r uint8) []byte {
	buf := make([]byte, l.Size())
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			off := y*l.Stride + x*4
			buf[off], buf[off+1], buf[off+2], buf[off+3] = b, g, r, 0xff
		}
	}
	return buf
}

func TestElement_UnitSize(t *testing.T) {
	e := newTestElement()

	size, ok := e.UnitSize(rawCaps(video.FormatBGRx, 320, 240))
	assert.True(t, ok)
	assert.Equal(t, 307200, size)

	size, ok = e.UnitSize(rawCaps(video.FormatGray8, 320, 240))
	assert.True(t, ok)
	assert.Equal(t, 76800, size)

	_, ok = e.UnitSize(SinkTemplate())
	assert.False(t, ok, "template caps are not fixed")

	_, ok = e.UnitSize(video.MustParseCaps("video/x-raw, format=I420, width=4, height=4"))
	assert.False(t, ok)
}

func TestElement_UnitSizeRowAlignment(t *testing.T) {
	caps := rawCaps(video.FormatGray8, 321, 2)

	for align, want := range map[int]int{1: 642, 4: 648, 16: 672} {
		size, ok := newTestElement(WithRowAlignment(align)).UnitSize(caps)
		assert.True(t, ok)
		assert.Equal(t, want, size, "align %d", align)
	}

	assert.Equal(t, video.DefaultRowAlignment, newTestElement(WithRowAlignment(0)).RowAlignment())
}

func TestElement_OverflowingCapsRejected(t *testing.T) {
	e := newTestElement()
	huge := video.RawCaps(video.FormatBGRx, video.MaxDimension, video.MaxDimension, video.Fraction{Num: 30, Den: 1})

	size, ok := e.UnitSize(huge)
	assert.False(t, ok)
	assert.Equal(t, 0, size)

	err := e.SetCaps(huge, huge)
	assert.ErrorIs(t, err, ErrNegotiation)
	assert.ErrorIs(t, err, video.ErrInvalidCaps)

	_, _, negotiated := e.Negotiated()
	assert.False(t, negotiated)
}

func TestElement_TransformGray8(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 4, 2), rawCaps(video.FormatGray8, 4, 2)))

	in, out, ok := e.Negotiated()
	require.True(t, ok)

	src := bgrxFrame(in, 0, 0, 255)
	dst := make([]byte, out.Size())
	require.NoError(t, e.Transform(src, dst))

	for _, v := range dst {
		assert.Equal(t, uint8(76), v)
	}
}

func TestElement_TransformBGRx(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 2, 2), rawCaps(video.FormatBGRx, 2, 2)))

	in, out, _ := e.Negotiated()
	src := bgrxFrame(in, 0, 255, 0)
	dst := make([]byte, out.Size())
	for i := range dst {
		dst[i] = 0x11
	}
	require.NoError(t, e.Transform(src, dst))

	for i := 0; i < len(dst); i += 4 {
		assert.Equal(t, []byte{149, 149, 149, 0x11}, dst[i:i+4], "pixel %d", i/4)
	}
}

func TestElement_NotNegotiated(t *testing.T) {
	e := newTestElement()

	err := e.Transform(make([]byte, 16), make([]byte, 4))
	assert.ErrorIs(t, err, ErrNotNegotiated)

	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 1, 1), rawCaps(video.FormatGray8, 1, 1)))
	require.NoError(t, e.Transform(make([]byte, 4), make([]byte, 4)))

	e.Stop()
	_, _, ok := e.Negotiated()
	assert.False(t, ok)
	assert.ErrorIs(t, e.Transform(make([]byte, 4), make([]byte, 4)), ErrNotNegotiated)
}

func TestElement_SetCapsFailureKeepsState(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 4, 4), rawCaps(video.FormatGray8, 4, 4)))

	err := e.SetCaps(rawCaps(video.FormatBGRx, 8, 8), SrcTemplate())
	assert.ErrorIs(t, err, ErrNegotiation)
	assert.ErrorIs(t, err, video.ErrInvalidCaps)

	err = e.SetCaps(video.MustParseCaps("video/x-raw, format=BGRx"), rawCaps(video.FormatGray8, 8, 8))
	assert.ErrorIs(t, err, ErrNegotiation)

	in, out, ok := e.Negotiated()
	require.True(t, ok)
	assert.Equal(t, 4, in.Width)
	assert.Equal(t, video.FormatGray8, out.Format)
}

func TestElement_RowCountMismatchLeavesOutput(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 4, 2), rawCaps(video.FormatGray8, 4, 2)))

	in, _, _ := e.Negotiated()
	src := bgrxFrame(in, 255, 255, 255)
	dst := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	err := e.Transform(src, dst)
	assert.ErrorIs(t, err, ErrBufferLayout)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, dst)
}

func TestElement_UnsupportedFormatPair(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatGray8, 4, 1), rawCaps(video.FormatGray8, 4, 1)))

	dst := make([]byte, 4)
	err := e.Transform(make([]byte, 4), dst)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestElement_ConcurrentTransform(t *testing.T) {
	e := newTestElement()
	require.NoError(t, e.SetCaps(rawCaps(video.FormatBGRx, 16, 16), rawCaps(video.FormatGray8, 16, 16)))
	in, out, _ := e.Negotiated()

	var wg sync.WaitGroup
	errs := make([]error, 32)
	dsts := make([][]byte, 32)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := uint8(i * 8)
			dsts[i] = make([]byte, out.Size())
			errs[i] = e.Transform(bgrxFrame(in, v, v, v), dsts[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err)
		assert.Equal(t, uint8(i*8), dsts[i][0], "frame %d", i)
	}
}
