package skill

import "strings"

// ELA section buckets. Every ELA section maps into exactly one of these
// five; Grammar & Language Conventions is the catch-all.
const (
	ELAReadingComprehension = "Reading Comprehension"
	ELAVocabulary           = "Vocabulary"
	ELASpelling             = "Spelling"
	ELAGrammar              = "Grammar & Language Conventions"
	ELAWriting              = "Writing"
)

// elaKeywords follows the same first-match-wins precedence as the math
// pattern list, with its own keyword sets.
var elaKeywords = []struct {
	keywords []string
	label    string
}{
	{[]string{"reading", "comprehension", "passage", "main idea", "inference"}, ELAReadingComprehension},
	{[]string{"vocabulary", "word meaning", "synonym", "antonym", "context clue"}, ELAVocabulary},
	{[]string{"spelling", "spell"}, ELASpelling},
	{[]string{"grammar", "punctuation", "capitalization", "sentence structure", "parts of speech", "language convention"}, ELAGrammar},
	{[]string{"writing", "essay", "paragraph", "composition"}, ELAWriting},
}

// ClassifyELASection maps a free-text ELA section label to one of the five
// buckets, defaulting to Grammar & Language Conventions.
func ClassifyELASection(section string) string {
	lowered := strings.ToLower(section)
	for _, set := range elaKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.label
			}
		}
	}
	return ELAGrammar
}
