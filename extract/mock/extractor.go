package mock

import "sync/atomic"

// Extractor is a test double for extract.Extractor. It allows custom
// behavior injection via the ExtractTextFunc field.
type Extractor struct {
	// ExtractTextFunc is called by ExtractText if set.
	// If nil, the raw bytes are returned verbatim as text.
	ExtractTextFunc func(data []byte) (string, error)

	callCount atomic.Int64
}

// NewExtractor creates a mock extractor with default behavior.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the injected function's result, or the input bytes
// as a string when no function is set.
func (m *Extractor) ExtractText(data []byte) (string, error) {
	m.callCount.Add(1)

	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(data)
	}
	return string(data), nil
}

// CallCount reports how many times ExtractText has been invoked.
func (m *Extractor) CallCount() int {
	return int(m.callCount.Load())
}
