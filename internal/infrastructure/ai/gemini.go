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

const geminiEndpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

type geminiProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func newGeminiProvider(apiKey string, model string, client *http.Client) ports.Provider {
	return &geminiProvider{
		apiKey:     apiKey,
		model:      valueOrDefault(model, domain.ProviderGemini.DefaultModel()),
		httpClient: client,
	}
}

func (p *geminiProvider) Name() domain.ProviderName {
	return domain.ProviderGemini
}

func (p *geminiProvider) Analyze(ctx context.Context, ectx domain.ErrorContext) (domain.AnalysisResult, error) {
	// Gemini takes a single content turn; the system role is folded into the
	// user prompt.
	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: systemPrompt + "\n\n" + buildAnalysisPrompt(ectx)},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}

	endpoint := fmt.Sprintf(geminiEndpointFormat, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	httpReq.Header.Set("x-goog-api-key", p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	defer resp.Body.Close()

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return failureResult(ectx, p.Name(), err), err
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("gemini: %s", resp.Status)
		if decoded.Error != nil {
			err = fmt.Errorf("gemini: %s", decoded.Error.Message)
		}
		return failureResult(ectx, p.Name(), err), err
	}

	content := decoded.FirstText()
	if content == "" {
		err := fmt.Errorf("gemini: empty completion")
		return failureResult(ectx, p.Name(), err), err
	}
	return successResult(ectx, content), nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

func (g geminiResponse) FirstText() string {
	if len(g.Candidates) == 0 || len(g.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return g.Candidates[0].Content.Parts[0].Text
}

var _ ports.Provider = (*geminiProvider)(nil)
