package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches 3- or 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS hex color value.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidConfig, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidConfig, "invalid hex color: %q", color)
	}
	return nil
}

// ValidateEdgeName validates an edge name from a chart config.
func ValidateEdgeName(name string) error {
	switch name {
	case "top", "right", "bottom", "left":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown edge: %q (want top, right, bottom, or left)", name)
}

// ValidateAnchorName validates an anchor name from a chart config.
func ValidateAnchorName(name string) error {
	switch name {
	case "", "start", "middle", "end":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown anchor: %q (want start, middle, or end)", name)
}

// ValidateMarkKind validates a series mark kind from a chart config.
func ValidateMarkKind(kind string) error {
	switch kind {
	case "", "line", "bar":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown mark kind: %q (want line or bar)", kind)
}

// ValidateScaleName validates an axis scale name from a chart config.
func ValidateScaleName(name string) error {
	switch name {
	case "", "float", "timestamp":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown scale: %q (want float or timestamp)", name)
}

// ValidatePath validates a file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
