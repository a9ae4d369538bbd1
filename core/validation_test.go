package core

import (
	"errors"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg:  &Config{Phrase: "hello", Roots: []string{"/tmp"}},
		},
		{
			name: "empty phrase is valid (match-all policy)",
			cfg:  &Config{Roots: []string{"/tmp"}},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "no roots",
			cfg:     &Config{Phrase: "hello"},
			wantErr: ErrNoRoots,
		},
		{
			name:    "empty root entry",
			cfg:     &Config{Phrase: "hello", Roots: []string{"/tmp", ""}},
			wantErr: ErrEmptyRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateConfig() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateConfig() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ValidateConfig() error does not wrap ErrInvalidConfig")
			}
		})
	}
}
