package align

import "strings"

// punctuation is the fixed set stripped from tokens before comparison.
// Smart quotes and dashes show up in passages pasted from word processors.
const punctuation = ".,!?;:\"'()[]{}‘’“”—–-"

// Tokenize normalizes text into comparable word tokens: lower-cased,
// punctuation stripped, split on whitespace, empty tokens dropped.
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Map(dropPunct, field)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func dropPunct(r rune) rune {
	if strings.ContainsRune(punctuation, r) {
		return -1
	}
	return r
}
