// Package skill assigns questions to named skill categories for granular
// reporting. Classification is pure and deterministic: an explicit topic
// override wins, otherwise the first matching pattern in a fixed, ordered
// list decides. The list order resolves ambiguous text (a question
// mentioning both fractions and decimals classifies as Fractions because
// that pattern is checked first), so reordering it is a behavior change.
package skill

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/internal/testdef"
)

// GeneralMath is the default label for math questions nothing else claims.
const GeneralMath = "General Math"

// WordProblems labels questions whose section marks them as word problems
// when no content pattern matched.
const WordProblems = "Word Problems"

// Pattern pairs a compiled expression with its skill label. Patterns are
// evaluated in slice order; first match wins.
type Pattern struct {
	Expr  *regexp.Regexp
	Label string
}

// mathPatterns is checked in order against question text plus section label.
var mathPatterns = []Pattern{
	{regexp.MustCompile(`round|nearest (ten|hundred|thousand)`), "Rounding"},
	{regexp.MustCompile(`multipl|times|product of`), "Multiplication"},
	{regexp.MustCompile(`divid|division|quotient|shared equally|split equally`), "Division"},
	{regexp.MustCompile(`fraction|numerator|denominator|half|third|quarter`), "Fractions"},
	{regexp.MustCompile(`decimal|tenths|hundredths`), "Decimals"},
	{regexp.MustCompile(`compar|greater|less than|least to greatest|order the numbers`), "Comparing Numbers"},
	{regexp.MustCompile(`volume|cubic`), "Volume"},
	{regexp.MustCompile(`\barea\b|square (unit|cent|inch|meter|foot)`), "Area"},
	{regexp.MustCompile(`pattern|sequence|comes next|rule for`), "Patterns & Sequences"},
	{regexp.MustCompile(`graph|chart|plot|data table`), "Graphs & Data"},
	{regexp.MustCompile(`angle|degrees|right angle|acute|obtuse`), "Angles"},
	{regexp.MustCompile(`perimeter|distance around`), "Perimeter"},
	{regexp.MustCompile(`clock|o'clock|elapsed time|minutes|hours`), "Time"},
	{regexp.MustCompile(`money|dollar|cents|coins|change from`), "Money"},
	{regexp.MustCompile(`measur|length|weight|capacity|grams|liters|inches|centimeters`), "Measurement"},
	{regexp.MustCompile(`order of operations|parentheses first|pemdas`), "Order of Operations"},
	{regexp.MustCompile(`place value|digit in the|expanded form|standard form`), "Place Value"},
}

var titleCaser = cases.Title(language.English)

// Classify resolves the skill label for one question.
//
// Precedence: explicit non-"general" override (formatted) → first matching
// content pattern → "Word Problems" when the section says so → GeneralMath.
func Classify(q testdef.Question) string {
	if override := strings.TrimSpace(q.ExplicitSkill); override != "" &&
		!strings.EqualFold(override, testdef.DefaultSkill) {
		return FormatLabel(override)
	}

	haystack := strings.ToLower(q.Text + " " + q.Section)
	for _, p := range mathPatterns {
		if p.Expr.MatchString(haystack) {
			return p.Label
		}
	}

	if strings.Contains(strings.ToLower(q.Section), "word problem") {
		return WordProblems
	}
	return GeneralMath
}

// FormatLabel turns a stored skill tag ("place_value", "mental-math") into
// its display form ("Place Value", "Mental Math").
func FormatLabel(tag string) string {
	tag = strings.ReplaceAll(tag, "_", " ")
	tag = strings.ReplaceAll(tag, "-", " ")
	return titleCaser.String(strings.Join(strings.Fields(tag), " "))
}

// MathPatterns exposes the ordered pattern list for order-contract tests.
func MathPatterns() []Pattern {
	return mathPatterns
}
