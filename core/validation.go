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

import "fmt"

// ValidateConfig validates a search Config according to domain rules.
//
// Validation rules:
//   - At least one root must be present
//   - No root may be the empty string
//
// NOT validated:
//   - Phrase (empty is the documented match-all policy)
//   - Extension (empty falls back to DefaultExtension)
//   - Root existence on disk (an unreadable root contributes an empty
//     worker result rather than failing validation)
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(cfg.Roots) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoRoots)
	}

	for _, root := range cfg.Roots {
		if root == "" {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrEmptyRoot)
		}
	}

	return nil
}
