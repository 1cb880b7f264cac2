package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePersonID validates a person identifier supplied by a caller
// (URL path segment, CLI flag, TUI selection). It rejects ids that could be
// used for path traversal or injection when the id is later embedded in
// cache keys, file names, or URLs.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 128 characters
func ValidatePersonID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPerson, "person id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidPerson, "person id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPerson, "person id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidPerson, "person id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateSourceFilename validates a relationship-file name for the file
// provider. It ensures the filename is a simple basename without path
// components.
func ValidateSourceFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "source filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "source filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "source filename cannot be a hidden file")
	}

	return nil
}

// uuidRegex matches canonical RFC 4122 UUID strings, the id shape produced
// by the bundled providers. External providers may use other shapes, so this
// is only enforced where kintree itself mints ids.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsCanonicalID reports whether id is a canonical lowercase UUID string.
func IsCanonicalID(id string) bool {
	return uuidRegex.MatchString(id)
}
