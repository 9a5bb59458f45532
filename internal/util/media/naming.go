package media

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxTitleRunes = 200

// SafeTitle cleans a title for use as the literal part of a yt-dlp output
// template. Path separators and control characters become spaces, runs of
// whitespace collapse, and '%' is doubled so yt-dlp does not read it as a
// template field. An empty result falls back to fallback.
func SafeTitle(title, fallback string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return ' '
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, title)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, ". ")

	if utf8.RuneCountInString(s) > maxTitleRunes {
		s = string([]rune(s)[:maxTitleRunes])
		s = strings.TrimRight(s, ". ")
	}
	if s == "" {
		if fallback == "" {
			return "untitled"
		}
		return SafeTitle(fallback, "")
	}
	return strings.ReplaceAll(s, "%", "%%")
}

// OutputTemplate returns the "<title>.%(ext)s" template for title.
func OutputTemplate(title, fallback string) string {
	return SafeTitle(title, fallback) + ".%(ext)s"
}
