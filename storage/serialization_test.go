package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/pdfscan/core"
)

func TestMarshalDocText_RoundTrip(t *testing.T) {
	in := &core.DocText{
		Text:        "extracted body with ünïcode",
		ExtractedAt: time.Date(2026, 1, 2, 3, 4, 5, 678000, time.UTC),
	}

	out, err := UnmarshalDocText(MarshalDocText(in))
	require.NoError(t, err)
	assert.Equal(t, in.Text, out.Text)
	assert.True(t, in.ExtractedAt.Equal(out.ExtractedAt))
}

func TestUnmarshalDocText_Corrupt(t *testing.T) {
	_, err := UnmarshalDocText([]byte{0xff})
	assert.ErrorIs(t, err, ErrCorruptEntry)
}

func TestMarshalID_RoundTrip(t *testing.T) {
	id := core.IDFromBytes([]byte("some document bytes"))
	out, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, out)
}
