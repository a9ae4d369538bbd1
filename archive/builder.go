package archive

import (
	"archive/zip"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// entryMode is the fixed permission recorded on every archive entry.
const entryMode = 0o644

// Builder creates zip archives of matched documents.
type Builder struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithDir sets the directory the archive is written to.
// Default is the current working directory.
func WithDir(dir string) Option {
	return func(b *Builder) error {
		b.dir = dir
		return nil
	}
}

// WithClock overrides the time source used for the archive name.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) error {
		b.now = now
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates an archive builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		dir:    ".",
		now:    time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build writes a zip archive named search_results_<UTC timestamp>.zip
// containing a deflate-compressed copy of every input file, and returns
// the archive path.
//
// Entries are named by the file's base name, not its path, so two
// inputs from different directories sharing a base name produce two
// identically named entries. Kept as-is; see the documented limitation.
//
// If any input cannot be read the whole build fails with *Error naming
// the offending path, and the partial archive file is removed.
func (b *Builder) Build(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", &Error{Err: ErrNoPaths}
	}

	name := "search_results_" + b.now().UTC().Format("20060102150405") + ".zip"
	archivePath := filepath.Join(b.dir, name)

	out, err := os.Create(archivePath)
	if err != nil {
		return "", &Error{Err: err}
	}

	w := zip.NewWriter(out)
	for _, path := range paths {
		if err := b.addEntry(w, path); err != nil {
			w.Close()
			out.Close()
			os.Remove(archivePath)
			return "", &Error{Path: path, Err: err}
		}
	}

	if err := w.Close(); err != nil {
		out.Close()
		os.Remove(archivePath)
		return "", &Error{Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(archivePath)
		return "", &Error{Err: err}
	}

	b.logger.Info("created archive", "path", archivePath, "files", len(paths))
	return archivePath, nil
}

func (b *Builder) addEntry(w *zip.Writer, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	header := &zip.FileHeader{
		Name:     filepath.Base(path),
		Method:   zip.Deflate,
		Modified: b.now().UTC(),
	}
	header.SetMode(entryMode)

	entry, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, in)
	return err
}
