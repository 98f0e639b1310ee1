package rgb2gray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/rgb2gray/pkg/adapters/logger"
	"github.com/user/rgb2gray/pkg/video"
)

const (
	bgrx320 = "video/x-raw, format=(string)BGRx, width=(int)320, height=(int)240, framerate=(fraction)30/1"
	gray320 = "video/x-raw, format=(string)GRAY8, width=(int)320, height=(int)240, framerate=(fraction)30/1"
)

func newTestElement(opts ...Option) *Element {
	return New(logger.NewNoop(), opts...)
}

func TestTransformCaps_SinkOffersGrayFirst(t *testing.T) {
	e := newTestElement()

	got := e.TransformCaps(video.DirectionSink, video.MustParseCaps(bgrx320), nil)

	require.Len(t, got, 2)
	assert.Equal(t, gray320, got[0].String())
	assert.Equal(t, bgrx320, got[1].String())
}

func TestTransformCaps_SinkWithFilter(t *testing.T) {
	e := newTestElement()
	caps := video.MustParseCaps(bgrx320)

	gray := e.TransformCaps(video.DirectionSink, caps, video.MustParseCaps("video/x-raw, format=GRAY8"))
	assert.Equal(t, gray320, gray.String())

	bgrx := e.TransformCaps(video.DirectionSink, caps, video.MustParseCaps("video/x-raw, format=BGRx"))
	assert.Equal(t, bgrx320, bgrx.String())

	none := e.TransformCaps(video.DirectionSink, caps, video.MustParseCaps("video/x-raw, format=I420"))
	assert.True(t, none.IsEmpty())
}

func TestTransformCaps_EmptyFilterYieldsEmpty(t *testing.T) {
	e := newTestElement()
	caps := video.MustParseCaps(bgrx320)

	for _, dir := range []video.PadDirection{video.DirectionSink, video.DirectionSrc} {
		got := e.TransformCaps(dir, caps, video.Caps{})
		assert.True(t, got.IsEmpty(), "direction %s", dir)

		got = e.TransformCaps(dir, caps, video.MustParseCaps("EMPTY"))
		assert.True(t, got.IsEmpty(), "direction %s", dir)

		assert.False(t, e.TransformCaps(dir, caps, nil).IsEmpty(), "direction %s", dir)
	}
}

func TestTransformCaps_SrcForcesBGRx(t *testing.T) {
	e := newTestElement()

	got := e.TransformCaps(video.DirectionSrc, video.MustParseCaps(gray320), nil)
	assert.Equal(t, bgrx320, got.String())

	// Each structure maps to one BGRx structure, in order.
	multi := video.MustParseCaps("video/x-raw, format=GRAY8, width=8; video/x-raw, format=BGRx, width=16")
	got = e.TransformCaps(video.DirectionSrc, multi, nil)
	assert.Equal(t,
		"video/x-raw, format=(string)BGRx, width=(int)8; video/x-raw, format=(string)BGRx, width=(int)16",
		got.String())
}

func TestTransformCaps_KeepsRanges(t *testing.T) {
	e := newTestElement()

	got := e.TransformCaps(video.DirectionSink, SinkTemplate(), nil)
	require.Len(t, got, 2)

	gray, ok := got[0].Str("format")
	require.True(t, ok)
	assert.Equal(t, "GRAY8", gray)

	width, ok := got[0].Get("width")
	require.True(t, ok)
	assert.Equal(t, video.IntRange{Min: 0, Max: video.MaxDimension}, width)
}

func TestTransformCaps_DoesNotModifyInput(t *testing.T) {
	e := newTestElement()
	caps := video.MustParseCaps(bgrx320)

	e.TransformCaps(video.DirectionSink, caps, nil)
	e.TransformCaps(video.DirectionSrc, caps, nil)

	assert.Equal(t, bgrx320, caps.String())
}

func TestTemplates(t *testing.T) {
	bgrx := video.MustParseCaps(bgrx320)
	gray := video.MustParseCaps(gray320)

	assert.True(t, SinkTemplate().CanIntersect(bgrx))
	assert.False(t, SinkTemplate().CanIntersect(gray))

	assert.True(t, SrcTemplate().CanIntersect(bgrx))
	assert.True(t, SrcTemplate().CanIntersect(gray))
	assert.False(t, SrcTemplate().CanIntersect(video.MustParseCaps("video/x-raw, format=I420")))
}
