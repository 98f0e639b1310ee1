package rgb2gray

import "errors"

var (
	// ErrNegotiation is returned by SetCaps when either side of the caps
	// cannot be resolved into a frame layout.
	ErrNegotiation = errors.New("rgb2gray: caps negotiation failed")

	// ErrNotNegotiated is returned by Transform before a successful SetCaps,
	// or after Stop.
	ErrNotNegotiated = errors.New("rgb2gray: not negotiated")

	// ErrBufferLayout is returned when buffer lengths, strides or row counts
	// do not match the negotiated layouts. The output buffer is left untouched.
	ErrBufferLayout = errors.New("rgb2gray: buffer layout mismatch")

	// ErrUnsupportedFormat is returned for any format pair other than
	// BGRx→BGRx and BGRx→GRAY8.
	ErrUnsupportedFormat = errors.New("rgb2gray: unsupported format conversion")
)
