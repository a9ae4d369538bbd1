package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Reports(t *testing.T) {
	var buf strings.Builder
	p := NewProgressTracker(&buf, 10, 5)

	p.Start()
	p.Increment(3)
	assert.Empty(t, buf.String(), "below interval, nothing reported")

	p.Increment(2)
	assert.Contains(t, buf.String(), "5/10")

	p.Finish()
	assert.Contains(t, buf.String(), "10/10")
}

func TestProgressTracker_IgnoredBeforeStart(t *testing.T) {
	var buf strings.Builder
	p := NewProgressTracker(&buf, 3, 1)

	p.Increment(2)
	p.Finish()
	assert.Empty(t, buf.String())
}

func TestProgressTracker_CapsAtTotal(t *testing.T) {
	var buf strings.Builder
	p := NewProgressTracker(&buf, 2, 1)

	p.Start()
	p.Increment(5)
	assert.Contains(t, buf.String(), "2/2")
}
