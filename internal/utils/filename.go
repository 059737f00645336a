package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)
	whitespaceChars      = regexp.MustCompile(`\s+`)
)

// maxFilenameLen leaves room for an id prefix and extension under the usual
// 255 byte limit.
const maxFilenameLen = 200

// SanitizeFilename strips characters most filesystems reject and collapses
// whitespace. An empty result becomes "untitled".
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = whitespaceChars.ReplaceAllString(name, " ")
	name = strings.Trim(name, " .")

	if len(name) > maxFilenameLen {
		name = strings.TrimSpace(truncateUTF8(name, maxFilenameLen))
	}
	if name == "" {
		name = "untitled"
	}
	return name
}

// RecordFilename names the file for one stored record. The id keeps records
// with equal names apart.
func RecordFilename(id uint, name, ext string) string {
	return fmt.Sprintf("%d %s%s", id, SanitizeFilename(name), ext)
}

func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
