package mocks

import (
	"image"
	"sync"

	"github.com/user/rgb2gray/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Negotiations map[int][]byte
	InputBuffers map[int][]byte
	OutputFrames map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:      enabled,
		Negotiations: make(map[int][]byte),
		InputBuffers: make(map[int][]byte),
		OutputFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveNegotiationJSON(group int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Negotiations[group] = data
	return nil
}

func (m *DebugSink) SaveInputBuffer(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InputBuffers[index] = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveOutputFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OutputFrames[index] = img
	return nil
}

// Counts returns the number of saved negotiations, input buffers and output
// frames.
func (m *DebugSink) Counts() (negotiations, inputs, outputs int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Negotiations), len(m.InputBuffers), len(m.OutputFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
