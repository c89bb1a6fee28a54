// Package text holds small string helpers used for blog and skill content.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// WordsPerMinute is the reading speed used by ReadTime.
const WordsPerMinute = 200

// Slugify turns a title into a URL-safe slug: lower case, a-z0-9 runs joined by "-".
// "Hello, World!" -> "hello-world"
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = reNonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Collapse trims s and squeezes whitespace runs into single spaces.
func Collapse(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadTime estimates minutes needed to read s, never less than one.
func ReadTime(s string) int {
	n := WordCount(s)
	m := (n + WordsPerMinute - 1) / WordsPerMinute
	if m < 1 {
		return 1
	}
	return m
}

// Excerpt returns the first max runes of the collapsed text, cut at a word
// boundary when possible and suffixed with "...".
func Excerpt(s string, max int) string {
	s = Collapse(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)[:max]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

// SplitList splits a comma separated list, dropping blanks.
// "go, sql,,docker " -> ["go" "sql" "docker"]
func SplitList(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeList flattens entries that hold several comma separated values and
// drops blanks. Older records stored a skill list as a single joined string.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, SplitList(it)...)
	}
	return out
}
