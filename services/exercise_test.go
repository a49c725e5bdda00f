package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawAnswers(t *testing.T, entries ...string) []json.RawMessage {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		raw = append(raw, json.RawMessage(entry))
	}
	return raw
}

func TestNormalizeAnswers_Positional(t *testing.T) {
	got := normalizeAnswers(rawAnswers(t, `"Paris"`, `"London"`), 3)
	assert.Equal(t, []string{"Paris", "London", ""}, got)
}

func TestNormalizeAnswers_Indexed(t *testing.T) {
	got := normalizeAnswers(rawAnswers(t,
		`{"index": 2, "answer": "c"}`,
		`{"index": 0, "answer": "a"}`,
	), 3)
	assert.Equal(t, []string{"a", "", "c"}, got)
}

func TestNormalizeAnswers_MixedShapes(t *testing.T) {
	got := normalizeAnswers(rawAnswers(t,
		`"first"`,
		`{"index": 2, "answer": "third"}`,
	), 3)
	assert.Equal(t, []string{"first", "", "third"}, got)
}

func TestNormalizeAnswers_DropsInvalidIndices(t *testing.T) {
	got := normalizeAnswers(rawAnswers(t,
		`{"index": 1.5, "answer": "fraction"}`,
		`{"index": -1, "answer": "negative"}`,
		`{"index": 9, "answer": "out of range"}`,
		`{"index": "nope", "answer": "not a number"}`,
		`{"index": "1", "answer": "numeric string"}`,
	), 3)
	assert.Equal(t, []string{"", "numeric string", ""}, got)
}

func TestNormalizeAnswers_PositionalOverflowIgnored(t *testing.T) {
	got := normalizeAnswers(rawAnswers(t, `"a"`, `"b"`, `"c"`), 2)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestAnswersMatch(t *testing.T) {
	assert.True(t, answersMatch("  Paris ", "paris"))
	assert.True(t, answersMatch("PARIS", "Paris"))
	assert.False(t, answersMatch("Lyon", "Paris"))
	assert.False(t, answersMatch("", "Paris"))
}

func TestScorePercent(t *testing.T) {
	assert.Equal(t, 0, scorePercent(0, 0))
	assert.Equal(t, 100, scorePercent(3, 3))
	assert.Equal(t, 67, scorePercent(2, 3))
	assert.Equal(t, 33, scorePercent(1, 3))
	assert.Equal(t, 50, scorePercent(1, 2))
}
