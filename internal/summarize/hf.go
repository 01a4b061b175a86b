package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// hfClient talks to a Hugging Face style inference endpoint for a fixed
// summarization model.
type hfClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

func newHFClient(endpoint, model, apiKey string) *hfClient {
	return &hfClient{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// Summarize runs one deterministic inference call and returns the summary
// text.
func (c *hfClient) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	reqBody := hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength: maxLength,
			MinLength: minLength,
			DoSample:  false,
		},
		Options: hfOptions{WaitForModel: true},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.endpoint + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	var summaries []hfSummary
	if err := json.Unmarshal(respBody, &summaries); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return summaries[0].SummaryText, nil
}
