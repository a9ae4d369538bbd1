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


package extract

import "errors"

var (
	// ErrMalformedDocument indicates the document could not be parsed.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrNoText indicates the document parsed but contained no extractable text.
	ErrNoText = errors.New("document contains no extractable text")

	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrNoInputs indicates a batch run was started without input paths.
	ErrNoInputs = errors.New("at least one input path required")
)
