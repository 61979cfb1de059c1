// Package langdetect names the language of fenced code blocks. It
// canonicalizes fence info strings through linguist aliases and, for untagged
// blocks, guesses a language from the code itself using go-enry.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// classifierCandidates bounds the enry classifier to languages that commonly
// appear in Markdown code fences.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Canonical maps a fence info string to a lowercase linguist language name.
// Only the first word of info is considered, so "js title=x" becomes
// "javascript". Tags enry does not know are returned lowercased, and an empty
// info string yields "".
func Canonical(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	tag := strings.ToLower(fields[0])
	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}
	return tag
}

// Detect guesses the language of code. It tries a shebang line first, then a
// set of unambiguous textual hints, and finally the enry classifier. Text is
// returned when none of them is confident.
func Detect(code []byte) string {
	if len(bytes.TrimSpace(code)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(code); safe {
		return normalize(lang)
	}

	if lang := matchHint(code); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(code, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
