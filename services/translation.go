package services

import (
	"context"
	"fmt"
	"strings"

	appContext "github.com/alphabatem/common/context"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

// TranslationService wraps the model client for plain-text translation. No
// recovery ladder here: the output is free text, not a JSON contract.
type TranslationService struct {
	appContext.DefaultService

	aiSvc *AIService
}

const TRANSLATION_SVC = "translation_svc"

const (
	translationTemperature = 0.3
	translationMaxTokens   = 2000
)

const translationSystemPrompt = "You are a translator. Return only the translated text with no commentary."

func (svc TranslationService) Id() string {
	return TRANSLATION_SVC
}

func (svc *TranslationService) Start() error {
	svc.aiSvc = svc.Service(AI_SVC).(*AIService)
	return nil
}

func (svc *TranslationService) Translate(ctx context.Context, req dto.TranslateRequest) (*dto.TranslateResponse, error) {
	prompt := fmt.Sprintf("Translate the following text to %s:\n\n%s", req.TargetLanguage, req.Text)

	translated, err := svc.aiSvc.Complete(ctx, translationSystemPrompt, prompt, CompletionParams{
		Temperature: translationTemperature,
		MaxTokens:   translationMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return nil, shared.NewUpstreamError(fmt.Errorf("empty translation"), "Translation failed")
	}

	return &dto.TranslateResponse{
		TranslatedText: translated,
		TargetLanguage: req.TargetLanguage,
	}, nil
}
