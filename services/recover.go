package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lingoleap/lingo_api/model"
)

// Recovery sources, in ladder order. Reported so monitoring can see how
// often the model hands back broken JSON.
const (
	RecoverySourceDirect   = "direct"
	RecoverySourceFenced   = "fenced"
	RecoverySourceRegex    = "regex"
	RecoverySourceFallback = "fallback"
)

// RecoveredContent is the best-effort structured form of a model response.
// Title and Body are always non-empty for a non-empty input; exercises are
// only ever taken from properly parsed JSON, never from regex repair.
type RecoveredContent struct {
	Title     string
	Body      string
	Exercises []model.Exercise
	Source    string
}

// rawGeneration mirrors the JSON contract the prompt asks for. Fields are
// loosely typed so numeric or null values coerce instead of failing the
// whole parse. Exercises stay raw so one malformed entry cannot poison the
// title and body.
type rawGeneration struct {
	Title     interface{}     `json:"title"`
	Content   interface{}     `json:"content"`
	Exercises json.RawMessage `json:"exercises"`
}

type rawExercise struct {
	Question      interface{}   `json:"question"`
	Options       []interface{} `json:"options"`
	CorrectAnswer interface{}   `json:"correctAnswer"`
	Explanation   interface{}   `json:"explanation"`
	FocusWord     interface{}   `json:"focusWord"`
}

var (
	fencedBlockPattern = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

	// Per-field extraction tiers: value bounded by the next known key,
	// value closed at end of text, value truncated with no closing quote.
	titleBoundedPattern   = regexp.MustCompile(`(?is)"title"\s*:\s*"(.*?)"\s*,\s*"content"`)
	titleLoosePattern     = regexp.MustCompile(`(?is)"title"\s*:\s*"(.*?)"\s*$`)
	titleTruncatedPattern = regexp.MustCompile(`(?is)"title"\s*:\s*"(.*)$`)

	contentBoundedPattern   = regexp.MustCompile(`(?is)"content"\s*:\s*"(.*?)"\s*,\s*"exercises"`)
	contentLoosePattern     = regexp.MustCompile(`(?is)"content"\s*:\s*"(.*?)"\s*$`)
	contentTruncatedPattern = regexp.MustCompile(`(?is)"content"\s*:\s*"(.*)$`)
)

// RecoverContent turns a raw model response into usable content. The ladder:
// direct JSON parse, fenced-block parse, per-field regex repair, then a
// synthesized title and the verbatim response body. Malformed input never
// produces an error; availability beats strictness here.
func RecoverContent(raw, topic string, expectExercises bool) RecoveredContent {
	parsed, source := parseJSONResponse(raw)

	exercises := []model.Exercise{}
	if expectExercises && parsed != nil {
		exercises = normalizeExercises(decodeExercises(parsed.Exercises))
	}

	var title, body string
	if parsed != nil {
		title = coerceString(parsed.Title)
		body = coerceString(parsed.Content)
	}

	if title == "" {
		if title = extractField(raw, titleBoundedPattern, titleLoosePattern, titleTruncatedPattern); title != "" && source == "" {
			source = RecoverySourceRegex
		}
	}
	if body == "" {
		if body = extractField(raw, contentBoundedPattern, contentLoosePattern, contentTruncatedPattern); body != "" && source == "" {
			source = RecoverySourceRegex
		}
	}

	if title == "" {
		title = fmt.Sprintf("%s - Generated Content", topic)
	}
	if body == "" {
		body = raw
	}
	if source == "" {
		source = RecoverySourceFallback
	}

	return RecoveredContent{
		Title:     title,
		Body:      body,
		Exercises: exercises,
		Source:    source,
	}
}

func parseJSONResponse(text string) (*rawGeneration, string) {
	if strings.TrimSpace(text) == "" {
		return nil, ""
	}

	var direct rawGeneration
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return &direct, RecoverySourceDirect
	}

	if match := fencedBlockPattern.FindStringSubmatch(text); match != nil {
		var fenced rawGeneration
		if err := json.Unmarshal([]byte(match[1]), &fenced); err == nil {
			return &fenced, RecoverySourceFenced
		}
	}

	return nil, ""
}

// extractField tries each pattern in tier order and unescapes the first hit.
func extractField(text string, patterns ...*regexp.Regexp) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); match != nil && match[1] != "" {
			return unescapeJSONString(match[1])
		}
	}
	return ""
}

// unescapeJSONString resolves the escape sequences regex capture leaves
// behind. Backslashes must be resolved before quotes so sequences like \\"
// do not unescape twice.
func unescapeJSONString(value string) string {
	value = strings.ReplaceAll(value, `\\`, `\`)
	value = strings.ReplaceAll(value, `\"`, `"`)
	value = strings.ReplaceAll(value, `\n`, "\n")
	value = strings.ReplaceAll(value, `\r`, "\r")
	value = strings.ReplaceAll(value, `\t`, "\t")
	return value
}

func decodeExercises(raw json.RawMessage) []rawExercise {
	if len(raw) == 0 {
		return nil
	}
	var exercises []rawExercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return nil
	}
	return exercises
}

// normalizeExercises coerces every field to a string and drops entries
// without a question, at least two options and a correct answer.
func normalizeExercises(raw []rawExercise) []model.Exercise {
	exercises := []model.Exercise{}
	for _, candidate := range raw {
		exercise := model.Exercise{
			Question:      coerceString(candidate.Question),
			Options:       make([]string, 0, len(candidate.Options)),
			CorrectAnswer: coerceString(candidate.CorrectAnswer),
			Explanation:   coerceString(candidate.Explanation),
			FocusWord:     coerceString(candidate.FocusWord),
		}
		for _, option := range candidate.Options {
			exercise.Options = append(exercise.Options, coerceString(option))
		}

		if exercise.Question == "" || len(exercise.Options) < 2 || exercise.CorrectAnswer == "" {
			continue
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
