package walker

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Documents returns a lazy sequence of candidate file paths under root:
// every regular file whose extension equals ext (without the dot).
//
// The extension comparison is case-sensitive, so with ext "pdf" a file
// named REPORT.PDF is not a candidate.
//
// Unreadable directories and entries are skipped, never surfaced. A
// nonexistent root yields an empty sequence.
func Documents(root, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if strings.TrimPrefix(filepath.Ext(path), ".") != ext {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// Collect drains a Documents sequence into a slice. Mostly useful in
// tests and for the batch extraction path.
func Collect(seq iter.Seq[string]) []string {
	var paths []string
	for path := range seq {
		paths = append(paths, path)
	}
	return paths
}
