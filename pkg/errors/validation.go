package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength is the longest material or node name the host accepts, in bytes.
const MaxNameLength = 63

// ValidateMaterialName validates a material name for storage and lookup.
//
// The rules mirror the host's data-block naming:
//   - No empty or whitespace-only names
//   - Maximum length of 63 bytes
//   - No control characters (including newlines and null bytes)
func ValidateMaterialName(name string) error {
	return validateName("material", name)
}

// ValidateNodeName validates a node name. Node names are the join key for
// link reconstruction, so the same rules as material names apply.
func ValidateNodeName(name string) error {
	return validateName("node", name)
}

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "%s name too long (max %d bytes): %q", kind, MaxNameLength, name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "%s name contains invalid control characters", kind)
		}
	}

	return nil
}

// ValidateFormat checks a document text format name.
func ValidateFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'json' or 'yaml')", format)
}
