package extract

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/calyptra/pdfscan/walker"
)

// BatchExtractor extracts text from many documents into one output file.
// Inputs may be individual files or directories; directories are walked
// recursively for documents with the configured extension.
type BatchExtractor struct {
	extractor Extractor
	extension string
	progress  io.Writer
	logger    *slog.Logger
}

// BatchOption configures a BatchExtractor.
type BatchOption func(*BatchExtractor) error

// WithBatchLogger sets a custom logger.
// Default is slog.Default().
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchExtractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithProgressWriter sets the destination for progress reporting.
// Default is os.Stderr; use io.Discard to silence it.
func WithProgressWriter(w io.Writer) BatchOption {
	return func(b *BatchExtractor) error {
		b.progress = w
		return nil
	}
}

// WithExtension sets the document extension used when walking input
// directories. Default is "pdf".
func WithExtension(ext string) BatchOption {
	return func(b *BatchExtractor) error {
		b.extension = ext
		return nil
	}
}

// NewBatchExtractor creates a batch extractor.
func NewBatchExtractor(extractor Extractor, opts ...BatchOption) (*BatchExtractor, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	b := &BatchExtractor{
		extractor: extractor,
		extension: "pdf",
		progress:  os.Stderr,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Result summarizes one batch run.
type Result struct {
	Extracted int
	Failed    int
}

// Run extracts text from every document named by inputs and writes the
// concatenation to outputPath, one header line per document. Documents
// that cannot be read or parsed are logged and skipped; the run fails
// only if inputs is empty or the output cannot be written.
func (b *BatchExtractor) Run(ctx context.Context, outputPath string, inputs []string) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	var docs []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			b.logger.Warn("skipping unreadable input", "path", input, "err", err)
			continue
		}
		if info.IsDir() {
			docs = append(docs, walker.Collect(walker.Documents(input, b.extension))...)
		} else {
			docs = append(docs, input)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	tracker := NewProgressTracker(b.progress, len(docs), 1)
	tracker.Start()
	defer tracker.Finish()

	result := &Result{}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		text, err := b.extractOne(doc)
		if err != nil {
			b.logger.Warn("skipping document", "path", doc, "err", err)
			result.Failed++
			tracker.Increment(1)
			continue
		}

		fmt.Fprintf(w, "==== %s ====\n", doc)
		w.WriteString(text)
		w.WriteString("\n\n")
		result.Extracted++
		tracker.Increment(1)
	}

	if err := w.Flush(); err != nil {
		return result, fmt.Errorf("writing output file: %w", err)
	}
	return result, nil
}

func (b *BatchExtractor) extractOne(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return b.extractor.ExtractText(data)
}
