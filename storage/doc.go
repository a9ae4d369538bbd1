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


// Package storage defines the extracted-text cache abstraction.
//
// The cache is strictly an extraction accelerator: entries are keyed by
// a content hash of the document's raw bytes, so a changed document
// never sees a stale entry, and nothing about search results is ever
// persisted. Every search still walks the filesystem from scratch.
//
// Implementations must be thread-safe; the search coordinator calls the
// cache from one worker per directory root.
package storage
