// Package gemini implements the text-generation client against a
// Gemini-style generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/vire-reports/internal/common"
	"github.com/bobmcallan/vire-reports/internal/config"
	"github.com/bobmcallan/vire-reports/internal/models"
)

// Client calls the generateContent endpoint for a configured model.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a generation client from config.
func NewClient(cfg *config.GeminiConfig, logger *common.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

// GenerateText sends one prompt to the model and returns the ordered
// candidate outputs. Callers use the first candidate.
func (c *Client) GenerateText(ctx context.Context, prompt string, maxTokens int) ([]models.Candidate, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{MaxOutputTokens: maxTokens},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("generation API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	if raw.Error != nil {
		return nil, fmt.Errorf("generation API error %d: %s", raw.Error.Code, raw.Error.Message)
	}

	if len(raw.Candidates) == 0 {
		return nil, fmt.Errorf("generation API returned no candidates")
	}

	candidates := make([]models.Candidate, 0, len(raw.Candidates))
	for _, cand := range raw.Candidates {
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		candidates = append(candidates, models.Candidate{Text: sb.String()})
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("model", c.model).
			Int("candidates", len(candidates)).
			Int("duration_ms", int(time.Since(start).Milliseconds())).
			Msg("generation call complete")
	}

	return candidates, nil
}
