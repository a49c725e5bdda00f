package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverContent_DirectParse(t *testing.T) {
	raw := `{"title":"Ordering Coffee","content":"Maria walks into a cafe.","exercises":[]}`

	got := RecoverContent(raw, "coffee", false)

	assert.Equal(t, RecoverySourceDirect, got.Source)
	assert.Equal(t, "Ordering Coffee", got.Title)
	assert.Equal(t, "Maria walks into a cafe.", got.Body)
	assert.Empty(t, got.Exercises)
}

func TestRecoverContent_FencedBlock(t *testing.T) {
	raw := "Sure! Here is your content:\n```json\n{\"title\":\"At the Market\",\"content\":\"Tom buys apples.\",\"exercises\":[]}\n```\nEnjoy!"

	got := RecoverContent(raw, "market", false)

	assert.Equal(t, RecoverySourceFenced, got.Source)
	assert.Equal(t, "At the Market", got.Title)
	assert.Equal(t, "Tom buys apples.", got.Body)
}

func TestRecoverContent_RegexRepair(t *testing.T) {
	// Trailing comma makes this invalid JSON, so both fields come from regex.
	raw := `{"title": "Broken JSON", "content": "Still readable text.", "exercises": [,]}`

	got := RecoverContent(raw, "topic", false)

	assert.Equal(t, RecoverySourceRegex, got.Source)
	assert.Equal(t, "Broken JSON", got.Title)
	assert.Equal(t, "Still readable text.", got.Body)
}

func TestRecoverContent_TruncatedContent(t *testing.T) {
	raw := `{"title": "Cut Off", "content": "The story begins wh`

	got := RecoverContent(raw, "topic", false)

	assert.Equal(t, RecoverySourceRegex, got.Source)
	assert.Equal(t, "Cut Off", got.Title)
	assert.Equal(t, "The story begins wh", got.Body)
}

func TestRecoverContent_EscapedSequences(t *testing.T) {
	raw := `{"title": "Line \"One\"", "content": "first\nsecond\tend", "exercises": [,]}`

	got := RecoverContent(raw, "topic", false)

	assert.Equal(t, `Line "One"`, got.Title)
	assert.Equal(t, "first\nsecond\tend", got.Body)
}

func TestRecoverContent_Fallback(t *testing.T) {
	raw := "The model just wrote prose with no JSON at all."

	got := RecoverContent(raw, "Weather", false)

	assert.Equal(t, RecoverySourceFallback, got.Source)
	assert.Equal(t, "Weather - Generated Content", got.Title)
	assert.Equal(t, raw, got.Body)
}

func TestRecoverContent_ExercisesKept(t *testing.T) {
	raw := `{"title":"Quiz","content":"Intro.","exercises":[
		{"question":"Pick one","options":["a","b","c"],"correctAnswer":"a","explanation":"because","focusWord":"pick"},
		{"question":"","options":["a","b"],"correctAnswer":"a"},
		{"question":"Too few options","options":["a"],"correctAnswer":"a"},
		{"question":"No answer","options":["a","b"],"correctAnswer":""}
	]}`

	got := RecoverContent(raw, "quiz", true)

	require.Len(t, got.Exercises, 1)
	assert.Equal(t, "Pick one", got.Exercises[0].Question)
	assert.Equal(t, "pick", got.Exercises[0].FocusWord)
}

func TestRecoverContent_MalformedExercisesDoNotPoisonBody(t *testing.T) {
	raw := `{"title":"Quiz","content":"Intro.","exercises":{"not":"an array"}}`

	got := RecoverContent(raw, "quiz", true)

	assert.Equal(t, RecoverySourceDirect, got.Source)
	assert.Equal(t, "Quiz", got.Title)
	assert.Equal(t, "Intro.", got.Body)
	assert.Empty(t, got.Exercises)
}

func TestRecoverContent_ExercisesNeverFromRegex(t *testing.T) {
	raw := `{"title": "Broken", "content": "Text.", "exercises": [{"question": "q", "options": ["a","b"], "correctAnswer": "a"}`

	got := RecoverContent(raw, "topic", true)

	assert.Equal(t, RecoverySourceRegex, got.Source)
	assert.Empty(t, got.Exercises)
}

func TestRecoverContent_NumericFieldsCoerced(t *testing.T) {
	raw := `{"title": 42, "content": true, "exercises": []}`

	got := RecoverContent(raw, "topic", false)

	assert.Equal(t, "42", got.Title)
	assert.Equal(t, "true", got.Body)
}

func TestUnescapeJSONString_OrderMatters(t *testing.T) {
	// \\n is an escaped backslash followed by n, not a newline.
	assert.Equal(t, `\n`, unescapeJSONString(`\\n`))
	assert.Equal(t, "\n", unescapeJSONString(`\n`))
}
