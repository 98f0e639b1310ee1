// Package ports defines the interfaces between the conversion element, the
// pipeline stages and their adapters.
package ports

import "github.com/user/rgb2gray/pkg/video"

// Transformer is the contract between a raw video element and the harness
// that drives it: caps negotiation, buffer sizing and frame conversion.
type Transformer interface {
	// TransformCaps returns the caps acceptable on the pad opposite to dir,
	// given caps on dir, narrowed by filter unless it is nil.
	TransformCaps(dir video.PadDirection, caps, filter video.Caps) video.Caps

	// SetCaps fixes the input and output layouts for subsequent frames.
	SetCaps(in, out video.Caps) error

	// Stop drops the negotiated layouts.
	Stop()

	// UnitSize returns the byte size of one frame described by caps.
	UnitSize(caps video.Caps) (int, bool)

	// Transform converts one input frame into the output buffer.
	Transform(src, dst []byte) error
}
