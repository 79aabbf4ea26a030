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

// Groq exposes an OpenAI-compatible chat completions API, so the adapter
// reuses the shared request/response codec and differs only in endpoint,
// credential, and pinned model.
const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

type groqProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func newGroqProvider(apiKey string, model string, client *http.Client) ports.Provider {
	return &groqProvider{
		apiKey:     apiKey,
		model:      valueOrDefault(model, domain.ProviderGroq.DefaultModel()),
		httpClient: client,
	}
}

func (p *groqProvider) Name() domain.ProviderName {
	return domain.ProviderGroq
}

func (p *groqProvider) Analyze(ctx context.Context, ectx domain.ErrorContext) (domain.AnalysisResult, error) {
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

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, groqEndpoint, bytes.NewReader(body))
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
		err := fmt.Errorf("groq: %s", resp.Status)
		if decoded.Error != nil {
			err = fmt.Errorf("groq: %s", decoded.Error.Message)
		}
		return failureResult(ectx, p.Name(), err), err
	}

	content := decoded.FirstMessage()
	if content == "" {
		err := fmt.Errorf("groq: empty completion")
		return failureResult(ectx, p.Name(), err), err
	}
	return successResult(ectx, content), nil
}

var _ ports.Provider = (*groqProvider)(nil)
