package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/go-resty/resty/v2"
)

// chatCompletionsPath is the OpenAI-compatible completion endpoint.
const chatCompletionsPath = "/v1/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	client *resty.Client
	model  string
}

// NewOpenAIClient constructs an [OracleClient] for the chat-completions API
// described by cfg.
func NewOpenAIClient(cfg config.Oracle) OracleClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(60 * time.Second).
		SetAuthToken(cfg.APIKey)

	return &openAIClient{
		client: cli,
		model:  cfg.Model,
	}
}

// Score implements [OracleClient]. The first choice's message content is
// returned; a response with no choices yields "".
func (c *openAIClient) Score(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model:    c.model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		}).
		Post(chatCompletionsPath)
	if err != nil {
		return "", fmt.Errorf("oracle request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return "", fmt.Errorf("oracle http %d: %s", resp.StatusCode(), body)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("decode oracle response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
