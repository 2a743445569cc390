package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyCompletion is returned when the API answered but produced no
// usable text in any candidate.
var ErrEmptyCompletion = errors.New("gemini: empty completion")

// Client wraps the Gemini SDK. A nil *Client is a valid "no credential
// configured" state; callers short-circuit to fallback content before any
// network call is attempted.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Gemini client. An empty API key yields (nil, nil) so
// the container can run the whole service in fallback mode.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Close releases the underlying SDK client.
func (c *Client) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// GenerateText sends a single user-role message and returns the first
// non-empty candidate's text, parts concatenated in order and trimmed.
// The call always runs under a finite timeout; the source behavior had
// none, which left a hung upstream call spinning forever.
func (c *Client) GenerateText(ctx context.Context, promptText string, temperature float32) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini: client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			return text, nil
		}
	}
	return "", ErrEmptyCompletion
}
