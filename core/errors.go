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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidConfig indicates a search Config failed validation.
	ErrInvalidConfig = errors.New("invalid search config")

	// ErrNoRoots indicates the Config names no directory roots.
	ErrNoRoots = errors.New("at least one search root required")

	// ErrEmptyRoot indicates a Config root entry is an empty string.
	ErrEmptyRoot = errors.New("search root cannot be empty")
)
