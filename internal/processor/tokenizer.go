package processor

import (
	"strings"
	"unicode"

	"github.com/wgomg/analyseur/internal/utils"
)

// StripSet lists the only characters removed from token edges. Quotes,
// semicolons and parentheses are kept on purpose.
const StripSet = "!.,?"

// isSeparator also accepts the ASCII file, group, record and unit separators,
// which unicode.IsSpace does not.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

// Tokenize splits text on whitespace runs, strips StripSet from both ends of
// each word and lowercases it. Words made only of StripSet characters yield
// an empty token, which is kept.
func Tokenize(text string) []Token {
	words := strings.FieldsFunc(text, isSeparator)
	tokens := make([]Token, 0, len(words))

	for _, word := range words {
		tokens = append(tokens, Token(strings.ToLower(utils.StripChars(word, StripSet))))
	}

	return tokens
}
