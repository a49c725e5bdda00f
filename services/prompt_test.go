package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

func TestComposePrompt_Story(t *testing.T) {
	req := dto.GenerateContentRequest{
		Topic:    "Ordering food",
		Level:    "B1",
		Type:     shared.ContentTypeStory,
		Language: "Spanish",
	}

	prompt := ComposePrompt(req, nil)

	assert.Contains(t, prompt, `Generate a Story about "Ordering food".`)
	assert.Contains(t, prompt, "narrative story")
	assert.Contains(t, prompt, "Level: B1")
	assert.Contains(t, prompt, "Language: Spanish")
	assert.Contains(t, prompt, `Set "exercises" to an empty array`)
	assert.NotContains(t, prompt, "Difficulty:")
	assert.NotContains(t, prompt, "Primary keywords")
}

func TestComposePrompt_ExerciseType(t *testing.T) {
	req := dto.GenerateContentRequest{
		Topic:    "Past tense",
		Level:    "A2",
		Type:     shared.ContentTypeExercise,
		Language: "English",
	}

	prompt := ComposePrompt(req, nil)

	assert.Contains(t, prompt, "Generate exactly 3 exercises")
	assert.NotContains(t, prompt, "empty array")
}

func TestComposePrompt_KeywordPriority(t *testing.T) {
	req := dto.GenerateContentRequest{
		Topic:     "Travel",
		Level:     "B2",
		Type:      shared.ContentTypeArticle,
		Language:  "English",
		Keywords:  dto.StringList{"airport", " luggage "},
		Interests: dto.StringList{"photography"},
	}

	prompt := ComposePrompt(req, nil)

	assert.Contains(t, prompt, "Primary keywords (must prioritize): airport, luggage")
	assert.Contains(t, prompt, "Secondary interests (optional context): photography")
	assert.Contains(t, prompt, "Keywords are higher priority than interests.")
}

func TestComposePrompt_SafetySettings(t *testing.T) {
	settings := &model.AISettings{SafetyMode: shared.SafetyModeStrict}
	settings.SetRestrictedTopicList([]string{"violence", "drugs"})

	req := dto.GenerateContentRequest{
		Topic:      "Cooking",
		Level:      "A1",
		Type:       shared.ContentTypeDialogue,
		Language:   "French",
		Difficulty: "easy",
	}

	prompt := ComposePrompt(req, settings)

	assert.Contains(t, prompt, "Avoid these topics: violence, drugs")
	assert.Contains(t, prompt, "strict safety guidelines")
	assert.Contains(t, prompt, "Difficulty: easy")
}

func TestComposePrompt_UnknownTypeGetsGenericInstruction(t *testing.T) {
	req := dto.GenerateContentRequest{
		Topic:    "Anything",
		Level:    "C1",
		Type:     "Podcast",
		Language: "English",
	}

	prompt := ComposePrompt(req, nil)

	assert.Contains(t, prompt, genericTypeInstruction)
	assert.True(t, strings.Contains(prompt, "140 and 220 words"))
}
