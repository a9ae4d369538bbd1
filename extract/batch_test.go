package extract

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/pdfscan/extract/mock"
)

func writeDoc(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewBatchExtractor(t *testing.T) {
	t.Run("nil extractor", func(t *testing.T) {
		_, err := NewBatchExtractor(nil)
		assert.Equal(t, ErrExtractorRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		b, err := NewBatchExtractor(mock.NewExtractor())
		require.NoError(t, err)
		assert.NotNil(t, b)
	})
}

func TestBatchExtractor_Run(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, filepath.Join(root, "a.pdf"), "alpha body")
	writeDoc(t, filepath.Join(root, "sub", "b.pdf"), "beta body")
	writeDoc(t, filepath.Join(root, "ignored.txt"), "not a document")
	single := filepath.Join(t.TempDir(), "c.pdf")
	writeDoc(t, single, "gamma body")

	b, err := NewBatchExtractor(mock.NewExtractor(), WithProgressWriter(io.Discard))
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "out.txt")
	result, err := b.Run(context.Background(), output, []string{root, single})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Extracted)
	assert.Equal(t, 0, result.Failed)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "alpha body")
	assert.Contains(t, text, "beta body")
	assert.Contains(t, text, "gamma body")
	assert.NotContains(t, text, "not a document")
	assert.Contains(t, text, "==== "+single+" ====")
}

func TestBatchExtractor_Run_SkipsFailures(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, filepath.Join(root, "good.pdf"), "good body")
	writeDoc(t, filepath.Join(root, "bad.pdf"), "bad body")

	extractor := mock.NewExtractor()
	extractor.ExtractTextFunc = func(data []byte) (string, error) {
		if strings.HasPrefix(string(data), "bad") {
			return "", ErrMalformedDocument
		}
		return string(data), nil
	}

	b, err := NewBatchExtractor(extractor, WithProgressWriter(io.Discard))
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "out.txt")
	result, err := b.Run(context.Background(), output, []string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Extracted)
	assert.Equal(t, 1, result.Failed)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "good body")
	assert.NotContains(t, string(data), "bad body")
}

func TestBatchExtractor_Run_NoInputs(t *testing.T) {
	b, err := NewBatchExtractor(mock.NewExtractor(), WithProgressWriter(io.Discard))
	require.NoError(t, err)

	_, err = b.Run(context.Background(), filepath.Join(t.TempDir(), "out.txt"), nil)
	assert.True(t, errors.Is(err, ErrNoInputs))
}

func TestBatchExtractor_Run_CustomExtension(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, filepath.Join(root, "a.txt"), "text body")
	writeDoc(t, filepath.Join(root, "b.pdf"), "pdf body")

	b, err := NewBatchExtractor(mock.NewExtractor(),
		WithProgressWriter(io.Discard), WithExtension("txt"))
	require.NoError(t, err)

	output := filepath.Join(t.TempDir(), "out.txt")
	result, err := b.Run(context.Background(), output, []string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Extracted)
}
