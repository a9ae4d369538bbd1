// Package archive bundles matched documents into a single zip file.
//
// Archives are created in a configurable directory (the working
// directory by default) under a deterministic timestamped name. The
// build is strictly sequential and runs only after a search has
// completed; it reads the frozen result set and never races with
// search workers.
package archive
