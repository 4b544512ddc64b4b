/*
PURPOSE:
  Minimal client for an Ollama-style generation endpoint.
  Forwards a free-text prompt and returns the model's response.

REQUIREMENTS:
  User-specified:
  - The model is a black box: one prompt in, one response out.

  Implementation-discovered:
  - Needs http.Client with timeouts; model loading happens before
    the first response byte, so ResponseHeaderTimeout covers it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (advise subcommand)
  - Uses: internal/config

ERROR HANDLING:
  - Non-200 responses and decode failures return errors; no retries.

IMPLEMENTATION RULES:
  - Use net/http.
  - Non-streaming request; the response is consumed whole.

USAGE:
  c := guidance.NewClient(cfg)
  text, err := c.Generate(ctx, "...")

SELF-HEALING INSTRUCTIONS:
  - If the endpoint API changes, update /api/generate handling.

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - Update for new endpoint features if the advise command grows.
*/

package guidance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"envsnap/internal/config"
)

// Client talks to the generation endpoint.
type Client struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg *config.Config) *Client {
	// ResponseHeaderTimeout covers the time until the first response
	// byte, which is where model loading happens.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.LoadTimeout

	return &Client{
		BaseURL: cfg.GenerateURL,
		Model:   cfg.GenerateModel,
		HTTP: &http.Client{
			Transport: transport,
			Timeout:   cfg.LoadTimeout + cfg.GenerateTimeout,
		},
	}
}

// Generate forwards the prompt and returns the response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":  c.Model,
		"prompt": prompt,
		"stream": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	var reply struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", err
	}

	return reply.Response, nil
}
