package core

import (
	"testing"
	"time"
)

func TestIDFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty input",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer document body that should still hash consistently every time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromBytes([]byte(tt.content))
			id2 := IDFromBytes([]byte(tt.content))

			if id1 != id2 {
				t.Errorf("IDFromBytes() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromBytes_Different(t *testing.T) {
	id1 := IDFromBytes([]byte("content1"))
	id2 := IDFromBytes([]byte("content2"))

	if id1 == id2 {
		t.Errorf("IDFromBytes() produced same ID for different content")
	}
}

func TestConfig_Ext(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "default extension",
			cfg:  Config{},
			want: "pdf",
		},
		{
			name: "explicit extension",
			cfg:  Config{Extension: "txt"},
			want: "txt",
		},
		{
			name: "uppercase extension is kept verbatim",
			cfg:  Config{Extension: "PDF"},
			want: "PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Ext(); got != tt.want {
				t.Errorf("Ext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultSet_Merge(t *testing.T) {
	rs := NewResultSet()

	rs.Merge([]*FileMatch{
		{Path: "/a/one.pdf", Matches: []MatchSpan{{Context: "x", Start: 0}}},
		{Path: "/a/two.pdf", Matches: []MatchSpan{{Context: "y", Start: 3}}},
	}, Stats{FilesScanned: 2, FilesMatched: 2, MatchCount: 2})

	rs.Merge([]*FileMatch{
		{Path: "/b/three.pdf", Matches: []MatchSpan{{Context: "z", Start: 9}}},
	}, Stats{FilesScanned: 1, FilesMatched: 1, MatchCount: 1})

	if rs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rs.Len())
	}

	stats := rs.Stats()
	if stats.FilesScanned != 3 || stats.FilesMatched != 3 || stats.MatchCount != 3 {
		t.Errorf("Stats() = %+v, want 3/3/3", stats)
	}

	if rs.Get("/a/one.pdf") == nil {
		t.Errorf("Get(/a/one.pdf) = nil, want match")
	}
	if rs.Get("/missing.pdf") != nil {
		t.Errorf("Get(/missing.pdf) != nil for unmatched path")
	}
}

func TestResultSet_MergeDeduplicatesPaths(t *testing.T) {
	rs := NewResultSet()

	first := &FileMatch{Path: "/shared/doc.pdf", Matches: []MatchSpan{{Start: 0}}}
	second := &FileMatch{Path: "/shared/doc.pdf", Matches: []MatchSpan{{Start: 5}, {Start: 9}}}

	rs.Merge([]*FileMatch{first}, Stats{})
	rs.Merge([]*FileMatch{second}, Stats{})

	if rs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after merging overlapping roots", rs.Len())
	}
	if got := rs.Get("/shared/doc.pdf"); len(got.Matches) != 1 {
		t.Errorf("duplicate path replaced the first merged result")
	}
}

func TestResultSet_Paths(t *testing.T) {
	rs := NewResultSet()
	rs.Merge([]*FileMatch{
		{Path: "/a.pdf"},
		{Path: "/b.pdf"},
	}, Stats{})

	paths := rs.Paths()
	if len(paths) != 2 {
		t.Fatalf("Paths() returned %d entries, want 2", len(paths))
	}
	seen := map[string]bool{}
	for _, p := range paths {
		seen[p] = true
	}
	if !seen["/a.pdf"] || !seen["/b.pdf"] {
		t.Errorf("Paths() = %v, missing entries", paths)
	}
}

func TestDocTextMUS_RoundTrip(t *testing.T) {
	in := DocText{
		Text:        "hello wörld",
		ExtractedAt: time.Date(2026, 3, 14, 9, 26, 53, 589000, time.UTC),
	}

	buf := make([]byte, DocTextMUS.Size(in))
	n := DocTextMUS.Marshal(in, buf)
	if n != len(buf) {
		t.Fatalf("Marshal wrote %d bytes, Size reported %d", n, len(buf))
	}

	out, n, err := DocTextMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Unmarshal consumed %d bytes, want %d", n, len(buf))
	}
	if out.Text != in.Text {
		t.Errorf("Text = %q, want %q", out.Text, in.Text)
	}
	if !out.ExtractedAt.Equal(in.ExtractedAt) {
		t.Errorf("ExtractedAt = %v, want %v", out.ExtractedAt, in.ExtractedAt)
	}
}

func TestIDMUS_RoundTrip(t *testing.T) {
	ids := []ID{0, 1, 255, 1 << 40, ^ID(0)}
	for _, id := range ids {
		buf := make([]byte, IDMUS.Size(id))
		IDMUS.Marshal(id, buf)
		out, _, err := IDMUS.Unmarshal(buf)
		if err != nil {
			t.Fatalf("Unmarshal(%d): %v", id, err)
		}
		if out != id {
			t.Errorf("round trip = %d, want %d", out, id)
		}
	}
}
