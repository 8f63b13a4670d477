package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorent/backend-rental/models"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"

	// maxToolRounds bounds the tool-use loop so a misbehaving model cannot
	// keep a request open indefinitely.
	maxToolRounds = 5

	systemPrompt = `You are a helpful customer service AI for GO-RENT, a premium luxury car rental service.
You help customers find the perfect car for their needs, answer questions about bookings, pricing, and rental policies.
Be friendly, professional, and helpful. If you cannot help with something, offer to escalate to human support.
Provide specific recommendations based on customer needs.`
)

// AnthropicClient implements ChatProvider against the Anthropic Messages
// API, executing tool calls locally between rounds.
type AnthropicClient struct {
	APIKey string
	Model  string
	Client *http.Client
	tools  *ToolExecutor
}

func NewAnthropicClient(apiKey, model string, tools *ToolExecutor) *AnthropicClient {
	return &AnthropicClient{
		APIKey: apiKey,
		Model:  model,
		Client: &http.Client{},
		tools:  tools,
	}
}

type anthropicMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []Tool             `json:"tools,omitempty"`
}

type contentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

type anthropicResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *AnthropicClient) Chat(ctx context.Context, history []models.ChatMessage) (string, error) {
	messages := make([]anthropicMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, anthropicMessage{Role: m.Role, Content: m.Content})
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.send(ctx, messages)
		if err != nil {
			return "", err
		}

		if resp.StopReason != "tool_use" {
			return collectText(resp.Content), nil
		}

		var results []contentBlock
		for _, block := range resp.Content {
			if block.Type != "tool_use" {
				continue
			}
			fmt.Printf("[Chat] Tool call: %s %s\n", block.Name, string(block.Input))
			output, err := a.tools.Execute(ctx, block.Name, block.Input)
			result := contentBlock{Type: "tool_result", ToolUseID: block.ID, Content: output}
			if err != nil {
				result.Content = err.Error()
				result.IsError = true
			}
			results = append(results, result)
		}

		messages = append(messages,
			anthropicMessage{Role: "assistant", Content: resp.Content},
			anthropicMessage{Role: "user", Content: results},
		)
	}

	return "", fmt.Errorf("assistant did not finish within %d tool rounds", maxToolRounds)
}

func (a *AnthropicClient) send(ctx context.Context, messages []anthropicMessage) (*anthropicResponse, error) {
	payload := anthropicRequest{
		Model:     a.Model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages:  messages,
		Tools:     RentalTools(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("anthropic response parse failed: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return nil, fmt.Errorf("anthropic API error: %s", resp.Error.Message)
		}
		return nil, fmt.Errorf("anthropic API returned status %d", httpResp.StatusCode)
	}
	return &resp, nil
}

func collectText(blocks []contentBlock) string {
	var parts []string
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}
