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


// Package search finds literal phrase occurrences across document trees.
//
// FindMatches scans extracted text for all non-overlapping occurrences
// of a phrase and produces a context snippet for each. The Searcher
// coordinates the full pipeline: one worker per directory root walks
// the tree, extracts text from each candidate document, and matches it;
// per-worker results are handed off over a channel and merged into a
// single ResultSet once every worker has finished.
//
// Per-file failures (unreadable files, malformed documents, parser
// panics) are logged and skipped; a failing root contributes an empty
// result without affecting sibling roots. A search runs to completion
// once started; cancellation is not supported.
package search
