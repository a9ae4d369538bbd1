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


package archive

import (
	"errors"
	"fmt"
)

// ErrNoPaths is returned when a build is requested with no input files.
var ErrNoPaths = errors.New("no files to archive")

// Error reports an archive failure together with the input file that
// caused it, when one did. Search results computed before the archive
// step remain valid regardless.
type Error struct {
	Path string // offending input file; empty for output-side failures
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("archive: %v", e.Err)
	}
	return fmt.Sprintf("archive: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
