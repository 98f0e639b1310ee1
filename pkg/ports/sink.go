package ports

import (
	"image"
)

// DebugSink receives intermediate results for inspection. Implementations
// must be safe for concurrent use by the convert workers.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveNegotiationJSON saves one negotiation outcome; group numbers them.
	SaveNegotiationJSON(group int, data []byte) error

	// SaveInputBuffer saves the packed BGRx buffer handed to the element.
	SaveInputBuffer(index int, data []byte) error

	// SaveOutputFrame saves a converted frame.
	SaveOutputFrame(index int, img image.Image) error
}
