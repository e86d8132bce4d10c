package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/depscope/pkg/integrations"
)

const (
	// DefaultBaseURL is the generative language API model root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-flash"
)

// Conversation roles understood by the API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

var (
	// ErrNoContent is returned when a response carries no candidate text.
	ErrNoContent = errors.New("no content in response")

	// ErrNoAPIKey is returned when the client was built without a key.
	ErrNoAPIKey = errors.New("gemini API key is required")
)

// Part is one piece of message content.
type Part struct {
	Text string `json:"text"`
}

// Content is one conversation turn.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Text builds a single-part turn.
func Text(role, text string) Content {
	return Content{Role: role, Parts: []Part{{Text: text}}}
}

// Client calls the generateContent endpoint.
type Client struct {
	*integrations.Client
	apiKey  string
	model   string
	baseURL string
}

// NewClient creates a Gemini client. An empty model selects [DefaultModel].
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		Client:  integrations.NewClient(timeout, map[string]string{"x-goog-api-key": apiKey}),
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// GenerateContent sends the conversation and returns the text of the first
// part of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)

	var resp generateResponse
	if err := c.PostJSON(ctx, url, nil, generateRequest{Contents: contents}, &resp); err != nil {
		return "", fmt.Errorf("gemini %s: %w", c.model, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrNoContent
	}
	return text, nil
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}
