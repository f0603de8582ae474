package utils

import (
	"strings"
	"unicode"
)

// Case conversion for external command/option names. Identifiers are split
// on case boundaries, digits, and separators: "GetWordIndex" and
// "get_word_index" both split into ["Get" "Word" "Index"]-shaped word lists.

// splitWords breaks an identifier into its component words.
func splitWords(ident string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(ident)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			// Start a new word on lower->upper transitions and at the end
			// of an acronym run (HTTPServer -> HTTP, Server).
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// KebabCase converts an identifier to kebab-case: "GetWordIndex" ->
// "get-word-index". This is the derived external name for commands and
// options.
func KebabCase(ident string) string {
	words := splitWords(ident)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// TitleCase converts an identifier to Title Case: "GetWordIndex" ->
// "Get Word Index". This is the derived display name for choices.
func TitleCase(ident string) string {
	words := splitWords(ident)
	for i, w := range words {
		if w == strings.ToUpper(w) && len(w) > 1 {
			continue // keep acronyms as-is
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
