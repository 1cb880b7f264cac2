package errors

import (
	"strings"
	"testing"
)

func TestValidatePersonID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid uuid",
			input:   "3f1c9a2e-8b4d-4a6f-9c3e-1d2b5a7e8f90",
			wantErr: false,
		},
		{
			name:    "valid opaque id",
			input:   "person-42",
			wantErr: false,
		},
		{
			name:    "empty id",
			input:   "",
			wantErr: true,
		},
		{
			name:    "path traversal",
			input:   "../etc/passwd",
			wantErr: true,
		},
		{
			name:    "double slash",
			input:   "a//b",
			wantErr: true,
		},
		{
			name:    "backslash",
			input:   `a\b`,
			wantErr: true,
		},
		{
			name:    "null byte",
			input:   "abc\x00def",
			wantErr: true,
		},
		{
			name:    "control character",
			input:   "abc\ndef",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 129),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePersonID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePersonID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPerson) {
				t.Errorf("ValidatePersonID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPerson)
			}
		})
	}
}

func TestValidateSourceFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple filename", input: "family.json", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "path separator", input: "dir/family.json", wantErr: true},
		{name: "backslash separator", input: `dir\family.json`, wantErr: true},
		{name: "hidden file", input: ".family.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSourceFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestIsCanonicalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "canonical uuid", input: "3f1c9a2e-8b4d-4a6f-9c3e-1d2b5a7e8f90", want: true},
		{name: "uppercase rejected", input: "3F1C9A2E-8B4D-4A6F-9C3E-1D2B5A7E8F90", want: false},
		{name: "missing groups", input: "3f1c9a2e-8b4d", want: false},
		{name: "opaque id", input: "person-42", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonicalID(tt.input); got != tt.want {
				t.Errorf("IsCanonicalID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
