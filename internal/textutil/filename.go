package textutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// lrcExt is appended by ExportFileName.
const lrcExt = ".lrc"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters and control characters are removed. The result is NFC
// normalized and trimmed, including leading dots.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, fileNameReplacer.Replace(name))
	name = norm.NFC.String(name)
	return strings.TrimLeft(strings.TrimSpace(name), ".")
}

// ExportFileName returns "Artist - Title.lrc" from song metadata. Missing
// parts are skipped; fallback is used when neither survives sanitizing.
func ExportFileName(artist, title, fallback string) string {
	artist = SanitizeFileName(artist)
	title = SanitizeFileName(title)

	var base string
	switch {
	case artist != "" && title != "":
		base = artist + " - " + title
	case title != "":
		base = title
	case artist != "":
		base = artist
	default:
		base = SanitizeFileName(fallback)
	}
	if base == "" {
		base = "lyrics"
	}
	if strings.EqualFold(filepath.Ext(base), lrcExt) {
		return base
	}
	return base + lrcExt
}
