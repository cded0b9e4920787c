package blob

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars matches everything outside the portable filename alphabet.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips directory components and unsafe characters from
// an upload's original filename, yielding the name the blob is stored
// under. Returns an empty string when nothing safe remains.
func SanitizeFilename(name string) string {
	// Uploads from Windows clients may carry backslash-separated paths.
	name = strings.ReplaceAll(name, `\`, `/`)
	name = filepath.Base(name)

	name = unsafeChars.ReplaceAllString(name, "_")

	// No hidden files and no way to spell a parent reference.
	name = strings.TrimLeft(name, "._")

	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

// Extension returns the lowercase extension of a filename without the
// leading dot, or an empty string if there is none.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
