package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/watchit-dev/watchit/internal/domain"
	"github.com/watchit-dev/watchit/internal/ports"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

type openAIProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func newOpenAIProvider(apiKey string, model string, client *http.Client) ports.Provider {
	return &openAIProvider{
		apiKey:     apiKey,
		model:      valueOrDefault(model, domain.ProviderOpenAI.DefaultModel()),
		httpClient: client,
	}
}

func (p *openAIProvider) Name() domain.ProviderName {
	return domain.ProviderOpenAI
}

func (p *openAIProvider) Analyze(ctx context.Context, ectx domain.ErrorContext) (domain.AnalysisResult, error) {
	payload := chatCompletionRequest{
		Model:     p.model,
		MaxTokens: domain.DefaultMaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildAnalysisPrompt(ectx)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(body))
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	defer resp.Body.Close()

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("openai: %s", resp.Status)
		if decoded.Error != nil {
			err = fmt.Errorf("openai: %s", decoded.Error.Message)
		}
		return failureResult(ectx, p.Name(), err), err
	}

	content := decoded.FirstMessage()
	if content == "" {
		err := fmt.Errorf("openai: empty completion")
		return failureResult(ectx, p.Name(), err), err
	}
	return successResult(ectx, content), nil
}

var _ ports.Provider = (*openAIProvider)(nil)
