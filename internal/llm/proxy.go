package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// proxyClient talks to a serverless relay that holds the model API key,
// so the key never ships with this service. The relay accepts a bare
// {"prompt": ...} body and answers in the Gemini REST response shape.
type proxyClient struct {
	url        string
	httpClient *http.Client
}

// NewProxyClient creates a client for the AI relay endpoint.
func NewProxyClient(url string) TextGenerator {
	return &proxyClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateContent sends a prompt to the relay and returns the generated
// text.
func (c *proxyClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	jsonBody, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ai relay error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var proxyResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&proxyResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(proxyResp.Candidates) == 0 || len(proxyResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return proxyResp.Candidates[0].Content.Parts[0].Text, nil
}
