// Copyright 2026 Calyptra Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package pdfscan searches directory trees of PDF documents for a
// literal phrase and optionally bundles the matching files into a zip
// archive. App is the top-level entry point wiring the extractor, the
// optional extraction cache, the search coordinator and the archive
// builder together.
package pdfscan

import (
	"context"
	"log/slog"

	"github.com/calyptra/pdfscan/archive"
	"github.com/calyptra/pdfscan/core"
	"github.com/calyptra/pdfscan/extract"
	"github.com/calyptra/pdfscan/search"
	"github.com/calyptra/pdfscan/storage"
	"github.com/calyptra/pdfscan/storage/badger"
)

// App bundles the collaborators needed for search, archive and batch
// extraction operations.
type App struct {
	extractor extract.Extractor
	cache     storage.TextCache
	searcher  *search.Searcher
	archiver  *archive.Builder
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	extractor  extract.Extractor
	cacheDir   string
	archiveDir string
	logger     *slog.Logger
}

// WithExtractor replaces the default PDF extractor.
func WithExtractor(extractor extract.Extractor) AppOption {
	return func(o *appOptions) {
		o.extractor = extractor
	}
}

// WithCacheDir enables the on-disk extracted-text cache at dir.
// Default is no cache.
func WithCacheDir(dir string) AppOption {
	return func(o *appOptions) {
		o.cacheDir = dir
	}
}

// WithArchiveDir sets where archives are written.
// Default is the current working directory.
func WithArchiveDir(dir string) AppOption {
	return func(o *appOptions) {
		o.archiveDir = dir
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		o.logger = logger
	}
}

// NewApp creates an App.
func NewApp(opts ...AppOption) (*App, error) {
	options := &appOptions{
		extractor:  extract.NewPDFExtractor(),
		archiveDir: ".",
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	var cache storage.TextCache
	if options.cacheDir != "" {
		var err error
		cache, err = badger.OpenTextCache(options.cacheDir)
		if err != nil {
			return nil, err
		}
	}

	searchOpts := []search.Option{search.WithLogger(options.logger)}
	if cache != nil {
		searchOpts = append(searchOpts, search.WithCache(cache))
	}
	searcher, err := search.NewSearcher(options.extractor, searchOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, err
	}

	archiver, err := archive.NewBuilder(
		archive.WithDir(options.archiveDir),
		archive.WithLogger(options.logger),
	)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, err
	}

	return &App{
		extractor: options.extractor,
		cache:     cache,
		searcher:  searcher,
		archiver:  archiver,
		logger:    options.logger,
	}, nil
}

// Search runs a full search and returns the frozen result set.
func (a *App) Search(ctx context.Context, cfg *core.Config) (*core.ResultSet, error) {
	return a.searcher.Search(ctx, cfg)
}

// SearchWithMonitor runs a full search with monitoring callbacks.
func (a *App) SearchWithMonitor(ctx context.Context, cfg *core.Config, monitor search.SearchMonitor) (*core.ResultSet, error) {
	return a.searcher.SearchWithMonitor(ctx, cfg, monitor)
}

// Archive bundles the given files into a timestamped zip archive and
// returns the archive path. Archive failures never invalidate search
// results already returned.
func (a *App) Archive(paths []string) (string, error) {
	return a.archiver.Build(paths)
}

// ExtractToFile extracts text from every document named by inputs
// (files or directories) into a single output file.
func (a *App) ExtractToFile(ctx context.Context, outputPath string, inputs []string, opts ...extract.BatchOption) (*extract.Result, error) {
	opts = append([]extract.BatchOption{extract.WithBatchLogger(a.logger)}, opts...)
	batch, err := extract.NewBatchExtractor(a.extractor, opts...)
	if err != nil {
		return nil, err
	}
	return batch.Run(ctx, outputPath, inputs)
}

// Close releases the extraction cache, if one is open.
func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}
