package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/lingoleap/lingo_api/shared"
)

// AIService talks to an OpenAI-compatible chat-completions endpoint. One
// attempt per call; upstream failures surface as errors and are never
// retried here.
type AIService struct {
	appContext.DefaultService

	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
}

const AI_SVC = "ai_svc"

const defaultCompletionTimeout = 60 * time.Second

func (svc AIService) Id() string {
	return AI_SVC
}

func (svc *AIService) Configure(ctx *appContext.Context) error {
	svc.httpClient = &http.Client{
		Timeout: defaultCompletionTimeout,
	}

	svc.apiKey = os.Getenv("OPENAI_API_KEY")
	svc.apiURL = os.Getenv("OPENAI_API_URL")
	if svc.apiURL == "" {
		svc.apiURL = "https://api.openai.com/v1/chat/completions"
	}
	svc.model = os.Getenv("OPENAI_MODEL")
	if svc.model == "" {
		svc.model = "gpt-4o-mini"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *AIService) Start() error {
	if svc.apiKey == "" {
		log.Warn("OPENAI_API_KEY is not set, content generation will fail")
	}
	return nil
}

type CompletionParams struct {
	Temperature float64
	MaxTokens   int
	JSONObject  bool
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one chat completion and returns the raw assistant text.
func (svc *AIService) Complete(ctx context.Context, systemPrompt, userPrompt string, params CompletionParams) (string, error) {
	request := chatRequest{
		Model: svc.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	}
	if params.JSONObject {
		request.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to build completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+svc.apiKey)

	start := time.Now()
	resp, err := svc.httpClient.Do(req)
	observeLLMRequest(time.Since(start), err == nil)
	if err != nil {
		return "", shared.NewUpstreamError(err, "Language model request failed")
	}
	defer resp.Body.Close()

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", shared.NewUpstreamError(err, "Failed to decode language model response")
	}

	if response.Error != nil {
		return "", shared.NewUpstreamError(fmt.Errorf("api error: %s", response.Error.Message), "Language model request failed")
	}

	if len(response.Choices) == 0 {
		return "", shared.NewUpstreamError(fmt.Errorf("empty choices"), "Language model returned no content")
	}

	return response.Choices[0].Message.Content, nil
}
