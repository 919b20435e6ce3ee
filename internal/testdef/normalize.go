// Package testdef flattens the three legacy test-definition layouts into one
// canonical question list. Normalization is total: malformed or unrecognized
// payloads yield an empty list, never an error, since callers render partial
// diagnostic data rather than fail a report.
package testdef

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize decodes a raw questions payload, detects its shape, and returns
// the flattened question list in encounter order (depth-first, outer to
// inner), numbered from 1.
func Normalize(raw json.RawMessage) []Question {
	items := decodeList(raw)
	if len(items) == 0 {
		return nil
	}

	var questions []Question
	switch DetectShape(items) {
	case ShapeFlat:
		questions = normalizeFlat(items)
	case ShapeSectioned:
		questions = normalizeSectioned(items)
	case ShapeNested:
		questions = normalizeNested(items)
	default:
		return nil
	}

	for i := range questions {
		questions[i].Number = i + 1
		if questions[i].ID == "" {
			questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}
	return questions
}

// DetectShape inspects the first element of the list. Legacy stores never
// mix layouts within one test, so one probe is enough.
func DetectShape(items []map[string]any) Shape {
	if len(items) == 0 {
		return ShapeUnknown
	}
	first := items[0]
	if _, ok := first["sections"]; ok {
		return ShapeNested
	}
	if _, ok := first["questions"]; ok {
		return ShapeSectioned
	}
	if hasQuestionFields(first) {
		return ShapeFlat
	}
	return ShapeUnknown
}

func normalizeFlat(items []map[string]any) []Question {
	out := make([]Question, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeQuestion(item, ""))
	}
	return out
}

func normalizeSectioned(sections []map[string]any) []Question {
	var out []Question
	for _, section := range sections {
		label := sectionLabel(section)
		for _, item := range asObjectList(section["questions"]) {
			out = append(out, normalizeQuestion(item, label))
		}
	}
	return out
}

func normalizeNested(items []map[string]any) []Question {
	var out []Question
	for _, item := range items {
		out = append(out, normalizeSectioned(asObjectList(item["sections"]))...)
	}
	return out
}

// normalizeQuestion maps one raw object to the canonical record. Each field
// falls back through a fixed precedence before defaulting.
func normalizeQuestion(item map[string]any, section string) Question {
	q := Question{
		ID:            stringField(item, "id", "question_id"),
		Text:          stringField(item, "question", "question_text", "text"),
		CorrectAnswer: stringField(item, "correct_answer", "correctAnswer"),
		ExplicitSkill: stringField(item, "topic", "skill_tag"),
		Options:       stringListField(item, "options", "choices"),
		Section:       section,
	}
	if q.ExplicitSkill == "" {
		q.ExplicitSkill = DefaultSkill
	}
	if s := stringField(item, "section"); s != "" {
		q.Section = s
	}

	q.Type = QuestionType(strings.ToLower(stringField(item, "type", "question_type")))
	if q.Type == "" {
		if len(q.Options) > 0 {
			q.Type = TypeMultipleChoice
		} else {
			q.Type = TypeShortAnswer
		}
	}
	return q
}

func sectionLabel(section map[string]any) string {
	return stringField(section, "name", "title", "section")
}

func hasQuestionFields(item map[string]any) bool {
	for _, key := range []string{"question", "question_text", "text"} {
		if _, ok := item[key]; ok {
			return true
		}
	}
	return false
}

// decodeList tolerates both a bare JSON array and an object wrapping one
// under a "questions" key.
func decodeList(raw json.RawMessage) []map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapper map[string]any
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		return asObjectList(wrapper["questions"])
	}
	return nil
}

func asObjectList(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// stringField returns the first non-empty string value among keys.
func stringField(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := item[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringListField returns the first key holding a non-empty list, with
// non-string elements dropped.
func stringListField(item map[string]any, keys ...string) []string {
	for _, key := range keys {
		list, ok := item[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
