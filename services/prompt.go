package services

import (
	"fmt"
	"strings"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/model"
	"github.com/lingoleap/lingo_api/shared"
)

const generatorSystemPrompt = "You are an educational content generator. Output JSON only."

var typeInstructions = map[string]string{
	shared.ContentTypeArticle:  "Write a short informative article with 2-3 concise paragraphs.",
	shared.ContentTypeStory:    "Write a short narrative story with a clear beginning, middle, and end.",
	shared.ContentTypeDialogue: "Write a dialogue between two people with at least 6 lines. Format each line as \"Name: sentence\".",
	shared.ContentTypeExercise: "Write a short instruction paragraph (2-3 sentences) that introduces the exercises below.",
}

const genericTypeInstruction = "Write clear, well-structured content."

// ComposePrompt builds the generation instruction for the language model.
// Pure string construction; every branch is driven by the request and the
// safety settings passed in.
func ComposePrompt(req dto.GenerateContentRequest, settings *model.AISettings) string {
	contentType := strings.TrimSpace(req.Type)

	typeInstruction, ok := typeInstructions[contentType]
	if !ok {
		typeInstruction = genericTypeInstruction
	}
	includeExercises := contentType == shared.ContentTypeExercise

	keywords := NormalizeTopicList(req.Keywords)
	interests := NormalizeTopicList(req.Interests)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s about %q.\n", contentType, req.Topic)
	b.WriteString(typeInstruction)
	b.WriteString("\n")

	if len(keywords) > 0 {
		fmt.Fprintf(&b, "Primary keywords (must prioritize): %s\n", strings.Join(keywords, ", "))
	}
	if len(interests) > 0 {
		fmt.Fprintf(&b, "Secondary interests (optional context): %s\n", strings.Join(interests, ", "))
	}
	if len(keywords) > 0 && len(interests) > 0 {
		b.WriteString("Keywords are higher priority than interests. If they conflict, follow keywords.\n")
	}

	if settings != nil {
		if restricted := settings.RestrictedTopicList(); len(restricted) > 0 {
			fmt.Fprintf(&b, "Avoid these topics: %s\n", strings.Join(restricted, ", "))
		}
		if settings.SafetyMode == shared.SafetyModeStrict {
			b.WriteString("Follow strict safety guidelines and avoid any sensitive content.\n")
		}
	}

	fmt.Fprintf(&b, "Level: %s\n", req.Level)
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	}
	fmt.Fprintf(&b, "Language: %s\n", req.Language)

	b.WriteString(`Return ONLY valid JSON with this exact shape:
{
  "title": "string",
  "content": "string",
  "exercises": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string",
      "focusWord": "string or empty"
    }
  ]
}
Keep the content between 140 and 220 words.
`)

	if includeExercises {
		b.WriteString("Generate exactly 3 exercises related to the content and level.\n")
		b.WriteString("Keep each explanation to one sentence (max 20 words).\n")
	} else {
		b.WriteString("Set \"exercises\" to an empty array and do not include any questions.\n")
	}

	return b.String()
}
