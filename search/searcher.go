package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/calyptra/pdfscan/core"
	"github.com/calyptra/pdfscan/extract"
	"github.com/calyptra/pdfscan/storage"
	"github.com/calyptra/pdfscan/walker"
)

// State is the lifecycle of a Searcher invocation.
type State int32

const (
	// StateIdle means no search has run yet.
	StateIdle State = iota
	// StateRunning means workers are active.
	StateRunning
	// StateDone means the last search completed and its result set is frozen.
	StateDone
)

// Searcher coordinates a concurrent search across directory roots.
// One worker runs per root; each worker accumulates its own local
// result list and hands it to the coordinator exactly once when it
// finishes, so workers never share mutable state while computing.
type Searcher struct {
	extractor extract.Extractor
	cache     storage.TextCache
	logger    *slog.Logger
	state     atomic.Int32
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCache sets an extracted-text cache consulted before the extractor.
// Default is no cache.
func WithCache(cache storage.TextCache) Option {
	return func(s *Searcher) error {
		s.cache = cache
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(extractor extract.Extractor, opts ...Option) (*Searcher, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	s := &Searcher{
		extractor: extractor,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// State returns the searcher's current lifecycle state.
func (s *Searcher) State() State {
	return State(s.state.Load())
}

// Search runs a full search and blocks until every worker has finished.
// The returned ResultSet is frozen; it is never mutated afterwards.
func (s *Searcher) Search(ctx context.Context, cfg *core.Config) (*core.ResultSet, error) {
	return s.SearchWithMonitor(ctx, cfg, nil)
}

// SearchWithMonitor runs a full search with monitoring. The monitor
// receives callbacks as workers progress; see SearchMonitor for the
// concurrency contract.
//
// Once started, a search always runs to completion: there is no
// cancellation or timeout. A failing root (e.g. unreadable directory)
// contributes an empty worker result and does not abort sibling roots.
func (s *Searcher) SearchWithMonitor(ctx context.Context, cfg *core.Config, monitor SearchMonitor) (*core.ResultSet, error) {
	if err := core.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) &&
		!s.state.CompareAndSwap(int32(StateDone), int32(StateRunning)) {
		return nil, ErrSearchRunning
	}

	monitor.Start(cfg)
	started := time.Now()

	// One worker per root; the pool is sized so every root runs
	// concurrently.
	pool, err := ants.NewPool(len(cfg.Roots))
	if err != nil {
		s.state.Store(int32(StateIdle))
		return nil, err
	}
	defer pool.Release()

	type handoff struct {
		matches []*core.FileMatch
		stats   core.Stats
	}
	out := make(chan handoff, len(cfg.Roots))

	var wg sync.WaitGroup
	for _, root := range cfg.Roots {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			monitor.RootStarted(root)
			matches, stats := s.searchRoot(ctx, cfg, root, monitor)
			monitor.RootFinished(root, len(matches))
			out <- handoff{matches: matches, stats: stats}
		})
		if submitErr != nil {
			// The root contributes an empty result.
			s.logger.Error("error submitting search worker", "root", root, "err", submitErr)
			wg.Done()
			out <- handoff{}
		}
	}

	// Join barrier: the transition to Done is exact, not time-based.
	wg.Wait()
	close(out)

	results := core.NewResultSet()
	for h := range out {
		results.Merge(h.matches, h.stats)
	}
	results.SetElapsed(time.Since(started))

	s.state.Store(int32(StateDone))
	monitor.Finish(results)
	return results, nil
}

// searchRoot walks one root and matches every candidate document,
// accumulating results locally. It only ever touches worker-local
// state; the coordinator merges the returned values after the join.
func (s *Searcher) searchRoot(ctx context.Context, cfg *core.Config, root string, monitor SearchMonitor) ([]*core.FileMatch, core.Stats) {
	var local []*core.FileMatch
	var stats core.Stats

	for path := range walker.Documents(root, cfg.Ext()) {
		stats.FilesScanned++

		match, err := s.searchFile(ctx, cfg, path)
		if err != nil {
			stats.FilesFailed++
			s.logger.Warn("skipping file", "path", path, "err", err)
			monitor.FileSkipped(path, err)
			continue
		}
		if match == nil {
			continue
		}

		local = append(local, match)
		stats.FilesMatched++
		stats.MatchCount += len(match.Matches)
		monitor.FileMatched(match)
	}

	return local, stats
}

// searchFile extracts one document and matches it against the phrase.
// Returns (nil, nil) when the document simply contains no match. Any
// panic raised by the extractor or the matcher is converted into a
// per-file error.
func (s *Searcher) searchFile(ctx context.Context, cfg *core.Config, path string) (match *core.FileMatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			match = nil
			err = fmt.Errorf("%w: %v", ErrFilePanic, r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Empty phrase: every candidate file is a match (match-all policy),
	// reported with a single placeholder span. Extraction is skipped.
	if cfg.Phrase == "" {
		return &core.FileMatch{
			Path:    path,
			Matches: []core.MatchSpan{{}},
		}, nil
	}

	text, err := s.extractText(ctx, data)
	if err != nil {
		return nil, err
	}

	spans := FindMatches(text, cfg.Phrase, cfg.CaseSensitive)
	if len(spans) == 0 {
		return nil, nil
	}

	return &core.FileMatch{Path: path, Matches: spans}, nil
}

// extractText returns the document text, consulting the cache first when
// one is configured. Cache failures are logged and fall through to a
// fresh extraction.
func (s *Searcher) extractText(ctx context.Context, data []byte) (string, error) {
	if s.cache == nil {
		return s.extractor.ExtractText(data)
	}

	id := core.IDFromBytes(data)
	text, found, err := s.cache.GetText(ctx, id)
	if err != nil {
		s.logger.Warn("error reading text cache", "id", uint64(id), "err", err)
	} else if found {
		return text, nil
	}

	text, err = s.extractor.ExtractText(data)
	if err != nil {
		return "", err
	}

	if putErr := s.cache.PutText(ctx, id, text); putErr != nil {
		s.logger.Warn("error writing text cache", "id", uint64(id), "err", putErr)
	}
	return text, nil
}
