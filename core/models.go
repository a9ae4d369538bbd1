package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// DefaultExtension is the document extension searched when the
// configuration does not name one.
const DefaultExtension = "pdf"

// ID is a content-derived identifier for extracted document text.
type ID uint64

// IDFromBytes generates a deterministic ID from raw document bytes using
// BLAKE2b hashing. Identical content always produces the same ID.
func IDFromBytes(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Config describes a single search invocation. It is owned by the caller
// and must not be mutated while the search runs.
type Config struct {
	Phrase        string   // literal phrase; empty means match-all
	CaseSensitive bool
	Roots         []string // directory roots, searched concurrently
	Extension     string   // document extension without dot; DefaultExtension if empty
	BuildArchive  bool     // bundle matched files into a zip after the search
}

// Ext returns the configured document extension, falling back to
// DefaultExtension. The extension comparison during the walk is
// case-sensitive.
func (c *Config) Ext() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}

// MatchSpan is a single occurrence of the phrase within a document.
// Start is a byte offset into the original extracted text, always on a
// rune boundary, such that the substring of length len(phrase) starting
// there equals the phrase under the configured case rule.
type MatchSpan struct {
	Context string // up to 40 runes either side of the match
	Start   int
}

// FileMatch collects all occurrences found in one document, ordered
// left to right by offset.
type FileMatch struct {
	Path    string
	Matches []MatchSpan
}

// Stats summarizes the work done by one search invocation.
type Stats struct {
	FilesScanned int
	FilesMatched int
	FilesFailed  int
	MatchCount   int
	Elapsed      time.Duration
}

// merge folds another worker's counters into s. Elapsed is owned by the
// coordinator and not merged.
func (s *Stats) merge(other Stats) {
	s.FilesScanned += other.FilesScanned
	s.FilesMatched += other.FilesMatched
	s.FilesFailed += other.FilesFailed
	s.MatchCount += other.MatchCount
}

// ResultSet is the aggregate outcome of a search. It is populated by the
// coordinator merging per-worker results and is immutable once the
// search returns. Iteration order over files is unspecified.
type ResultSet struct {
	files map[string]*FileMatch
	stats Stats
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{files: make(map[string]*FileMatch)}
}

// Merge appends one worker's local results to the aggregate. A path that
// was already merged from another worker (overlapping roots) is kept
// once; the first merged FileMatch wins.
func (rs *ResultSet) Merge(matches []*FileMatch, stats Stats) {
	for _, m := range matches {
		if m == nil {
			continue
		}
		if _, ok := rs.files[m.Path]; ok {
			continue
		}
		rs.files[m.Path] = m
	}
	rs.stats.merge(stats)
}

// SetElapsed records the total wall-clock duration of the search.
func (rs *ResultSet) SetElapsed(d time.Duration) {
	rs.stats.Elapsed = d
}

// Len returns the number of matched files.
func (rs *ResultSet) Len() int {
	return len(rs.files)
}

// Stats returns the merged search statistics.
func (rs *ResultSet) Stats() Stats {
	return rs.stats
}

// Get returns the FileMatch for a path, or nil if the path did not match.
func (rs *ResultSet) Get(path string) *FileMatch {
	return rs.files[path]
}

// Paths returns the matched file paths in unspecified order.
func (rs *ResultSet) Paths() []string {
	paths := make([]string, 0, len(rs.files))
	for path := range rs.files {
		paths = append(paths, path)
	}
	return paths
}

// Files returns the matched files in unspecified order.
func (rs *ResultSet) Files() []*FileMatch {
	files := make([]*FileMatch, 0, len(rs.files))
	for _, m := range rs.files {
		files = append(files, m)
	}
	return files
}

// DocText is a cached extraction result for one document, keyed by the
// content ID of the document's raw bytes.
type DocText struct {
	Text        string
	ExtractedAt time.Time
}
