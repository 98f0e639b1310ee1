package mocks

import (
	"sync"

	"github.com/user/rgb2gray/pkg/ports"
	"github.com/user/rgb2gray/pkg/video"
)

// Transformer is a mock implementation of ports.Transformer. Without
// overrides it accepts any caps, reports no unit size and copies src into
// dst.
type Transformer struct {
	mu sync.Mutex

	TransformCapsFunc func(dir video.PadDirection, caps, filter video.Caps) video.Caps
	SetCapsFunc       func(in, out video.Caps) error
	UnitSizeFunc      func(caps video.Caps) (int, bool)
	TransformFunc     func(src, dst []byte) error

	SetCapsCalls   int
	StopCalls      int
	TransformCalls int
}

func (m *Transformer) TransformCaps(dir video.PadDirection, caps, filter video.Caps) video.Caps {
	if m.TransformCapsFunc != nil {
		return m.TransformCapsFunc(dir, caps, filter)
	}
	return caps.Clone()
}

func (m *Transformer) SetCaps(in, out video.Caps) error {
	m.mu.Lock()
	m.SetCapsCalls++
	m.mu.Unlock()
	if m.SetCapsFunc != nil {
		return m.SetCapsFunc(in, out)
	}
	return nil
}

func (m *Transformer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopCalls++
}

func (m *Transformer) UnitSize(caps video.Caps) (int, bool) {
	if m.UnitSizeFunc != nil {
		return m.UnitSizeFunc(caps)
	}
	return 0, false
}

func (m *Transformer) Transform(src, dst []byte) error {
	m.mu.Lock()
	m.TransformCalls++
	m.mu.Unlock()
	if m.TransformFunc != nil {
		return m.TransformFunc(src, dst)
	}
	copy(dst, src)
	return nil
}

var _ ports.Transformer = (*Transformer)(nil)
