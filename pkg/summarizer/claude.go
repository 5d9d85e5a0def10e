package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Claude summarizes memory clusters via the Anthropic Messages API.
type Claude struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// claudeRequest is the Messages API request body.
type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Messages    []claudeMessage `json:"messages"`
	System      string          `json:"system,omitempty"`
	Temperature float64         `json:"temperature"`
}

// claudeMessage is a single conversation message.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the Messages API response body.
type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// claudeError is an error response from the API.
type claudeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClaude creates a Claude-backed summarizer. baseURL and model may be
// empty to use the public API endpoint and a current default model.
func NewClaude(apiKey, baseURL, model string) (*Claude, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	if model == "" {
		model = "claude-3-5-sonnet-20241022"
	}

	return &Claude{
		apiKey:    apiKey,
		baseURL:   baseURL,
		model:     model,
		maxTokens: 1024,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Summarize condenses the cluster contents into one consolidated string.
func (c *Claude) Summarize(ctx context.Context, contents []string) (string, error) {
	if len(contents) == 0 {
		return "", fmt.Errorf("no contents to summarize")
	}

	req := claudeRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: 0.3,
		System:      systemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: buildPrompt(contents)},
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp claudeError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("empty response from API")
	}
	summary := claudeResp.Content[0].Text
	if summary == "" {
		return "", fmt.Errorf("empty summary text")
	}

	return summary, nil
}
