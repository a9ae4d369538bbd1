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


package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/calyptra/pdfscan"
	"github.com/calyptra/pdfscan/core"
)

func main() {
	app := &cli.App{
		Name:  "pdfscan",
		Usage: "PDF text extraction and search tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search for text in PDF files",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search-phrase",
						Aliases: []string{"s"},
						Usage:   "Literal phrase to search for (empty matches every document)",
					},
					&cli.StringSliceFlag{
						Name:    "directory",
						Aliases: []string{"d"},
						Usage:   "Directory to search in (repeatable; defaults to the home directory)",
					},
					&cli.BoolFlag{
						Name:    "zip",
						Aliases: []string{"z"},
						Usage:   "Create a ZIP archive of all matching files",
					},
					&cli.BoolFlag{
						Name:    "case-sensitive",
						Aliases: []string{"c"},
						Usage:   "Match case exactly",
					},
					&cli.StringFlag{
						Name:  "extension",
						Usage: "Document extension to consider (case-sensitive match)",
						Value: core.DefaultExtension,
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Directory for the extracted-text cache (disabled if unset)",
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract text from PDFs and save to a file",
				ArgsUsage: "OUTPUT_FILE INPUT_PATH [INPUT_PATH...]",
				Action:    extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "extension",
						Usage: "Document extension considered when walking input directories",
						Value: core.DefaultExtension,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func searchCommand(c *cli.Context) error {
	roots := c.StringSlice("directory")
	if len(roots) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("no search directory given and no home directory: %w", err)
		}
		roots = []string{home}
	}

	var opts []pdfscan.AppOption
	if dir := c.String("cache"); dir != "" {
		opts = append(opts, pdfscan.WithCacheDir(dir))
	}

	app, err := pdfscan.NewApp(opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	results, err := app.Search(c.Context, &core.Config{
		Phrase:        c.String("search-phrase"),
		CaseSensitive: c.Bool("case-sensitive"),
		Roots:         roots,
		Extension:     c.String("extension"),
		BuildArchive:  c.Bool("zip"),
	})
	if err != nil {
		return err
	}

	for _, path := range results.Paths() {
		fmt.Fprintln(c.App.Writer, path)
	}

	stats := results.Stats()
	fmt.Fprintf(c.App.ErrWriter, "%d matches found in %d file(s), %d scanned, %d failed (%s)\n",
		stats.MatchCount, stats.FilesMatched, stats.FilesScanned, stats.FilesFailed,
		stats.Elapsed.Round(time.Millisecond))

	if c.Bool("zip") && results.Len() > 0 {
		archivePath, err := app.Archive(results.Paths())
		if err != nil {
			// Search results above stay valid; only the archive failed.
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "Created ZIP file with search results: %s\n", archivePath)
	}

	return nil
}

func extractCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: pdfscan extract OUTPUT_FILE INPUT_PATH [INPUT_PATH...]")
	}

	output := c.Args().First()
	inputs := c.Args().Tail()

	app, err := pdfscan.NewApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.ExtractToFile(c.Context, output, inputs)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "Extracted %d document(s) to %s (%d failed)\n",
		result.Extracted, output, result.Failed)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
