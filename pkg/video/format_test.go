package video

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePixelFormat(t *testing.T) {
	f, err := ParsePixelFormat("BGRx")
	require.NoError(t, err)
	assert.Equal(t, FormatBGRx, f)
	assert.Equal(t, 4, f.BytesPerPixel())

	f, err = ParsePixelFormat("GRAY8")
	require.NoError(t, err)
	assert.Equal(t, FormatGray8, f)
	assert.Equal(t, 1, f.BytesPerPixel())

	_, err = ParsePixelFormat("gray8")
	assert.Error(t, err)
	assert.Equal(t, 0, FormatUnknown.BytesPerPixel())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestPixelFormat_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Format PixelFormat `json:"format"`
	}{FormatGray8})
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"GRAY8"}`, string(data))

	var v struct {
		Format PixelFormat `json:"format"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"format":"BGRx"}`), &v))
	assert.Equal(t, FormatBGRx, v.Format)

	assert.Error(t, json.Unmarshal([]byte(`{"format":"I420"}`), &v))
}

func TestParsePadDirection(t *testing.T) {
	d, err := ParsePadDirection("sink")
	require.NoError(t, err)
	assert.Equal(t, DirectionSink, d)
	assert.Equal(t, "sink", d.String())

	d, err = ParsePadDirection("src")
	require.NoError(t, err)
	assert.Equal(t, DirectionSrc, d)
	assert.Equal(t, "src", d.String())

	_, err = ParsePadDirection("both")
	assert.Error(t, err)
}
