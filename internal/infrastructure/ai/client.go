// Package ai implements the maintenance analysis provider on top of
// OpenAI-compatible chat-completion APIs. The API key selects the upstream:
// keys with the "sk-" prefix route to OpenAI, anything else to Perplexity.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/ports"
)

const (
	openAIURL     = "https://api.openai.com/v1/chat/completions"
	perplexityURL = "https://api.perplexity.ai/chat/completions"

	openAIModel     = "gpt-4o"
	perplexityModel = "sonar"

	defaultTimeout = 60 * time.Second
)

const systemPrompt = "You are a maintenance analysis assistant for industrial equipment. " +
	"Analyze the reported issue and respond with a concise assessment of the likely " +
	"cause, the recommended repair action, and an urgency rating (critical, high, " +
	"medium, or low)."

// Client calls a hosted chat-completion API and distills the reply into an
// analysis plus a derived priority. It implements ports.AnalysisProvider.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	withVision bool
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient builds a Client for the provider implied by the API key.
func NewClient(apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
	if strings.HasPrefix(apiKey, "sk-") {
		c.baseURL = openAIURL
		c.model = openAIModel
		c.withVision = true
	} else {
		c.baseURL = perplexityURL
		c.model = perplexityModel
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
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

// AnalyzeDescription sends a textual damage report for analysis.
func (c *Client) AnalyzeDescription(ctx context.Context, description, extra string) (*ports.AnalysisResult, error) {
	prompt := "Issue report: " + description
	if extra != "" {
		prompt += "\nAdditional context: " + extra
	}

	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	})
}

// AnalyzePhoto sends a base64-encoded photo for visual analysis. Providers
// without vision support receive a text-only fallback describing the request.
func (c *Client) AnalyzePhoto(ctx context.Context, base64Image, extra string) (*ports.AnalysisResult, error) {
	if !c.withVision {
		desc := "A photo of damaged equipment was submitted but this provider cannot inspect images."
		if extra != "" {
			desc += " Reported context: " + extra
		}
		return c.complete(ctx, []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: desc},
		})
	}

	text := "Analyze the equipment damage shown in this photo."
	if extra != "" {
		text += " Context: " + extra
	}

	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &imageURL{
				URL: "data:image/jpeg;base64," + base64Image,
			}},
		}},
	})
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (*ports.AnalysisResult, error) {
	body, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: 500,
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error().Int("status", resp.StatusCode).Msg("chat completion failed")
		return nil, fmt.Errorf("chat completion: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("chat completion: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: empty response")
	}

	analysis := strings.TrimSpace(parsed.Choices[0].Message.Content)
	return &ports.AnalysisResult{
		Analysis: analysis,
		Priority: derivePriority(analysis),
	}, nil
}

// derivePriority scans the analysis text for the urgency rating the prompt
// asks the model to include.
func derivePriority(analysis string) string {
	lower := strings.ToLower(analysis)
	switch {
	case strings.Contains(lower, "critical"):
		return "critical"
	case strings.Contains(lower, "high"):
		return "high"
	default:
		return "medium"
	}
}
