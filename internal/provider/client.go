// Package provider wraps the third-party chat-completions API that drives the
// file tools. It is pure glue over the generation endpoint: chat history in,
// assistant tool call out.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forgeline/fileedit/internal/core/schema"
)

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

// MessageRole enumerates the chat roles supported by the provider.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// ChatMessage stores a single message exchanged with the provider.
type ChatMessage struct {
	Role       MessageRole
	Content    string
	ToolCallID string
	Name       string
}

// ToolCall stores metadata for an assistant tool invocation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Client wraps the HTTP client required to call the chat-completions API,
// advertising the file tools on every request.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	tools      []schema.ToolDefinition
}

// NewClient configures the client from cfg. Model and APIKey are required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("provider: API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("provider: model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		tools: schema.Definitions(),
	}, nil
}

// RequestToolCall sends the accumulated chat history to the provider and
// returns the first tool call from the assistant response. Validation of the
// call's arguments is the caller's concern.
func (c *Client) RequestToolCall(ctx context.Context, history []ChatMessage) (ToolCall, error) {
	payload := chatCompletionRequest{
		Model:      c.model,
		Messages:   buildMessages(history),
		ToolChoice: "auto",
	}
	for _, tool := range c.tools {
		payload.Tools = append(payload.Tools, toolSpecification{
			Type: "function",
			Function: functionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ToolCall{}, fmt.Errorf("provider: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return ToolCall{}, fmt.Errorf("provider: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ToolCall{}, fmt.Errorf("provider: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return ToolCall{}, fmt.Errorf("provider: status %s: %s", resp.Status, string(msg))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return ToolCall{}, fmt.Errorf("provider: decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return ToolCall{}, errors.New("provider: response contained no choices")
	}
	choice := completion.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		return ToolCall{}, errors.New("provider: assistant did not call a tool")
	}

	toolCall := choice.Message.ToolCalls[0]
	return ToolCall{
		ID:        toolCall.ID,
		Name:      toolCall.Function.Name,
		Arguments: toolCall.Function.Arguments,
	}, nil
}

type chatCompletionRequest struct {
	Model      string              `json:"model"`
	Messages   []chatMessage       `json:"messages"`
	Tools      []toolSpecification `json:"tools,omitempty"`
	ToolChoice string              `json:"tool_choice,omitempty"`
}

type chatMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content,omitempty"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

type toolSpecification struct {
	Type     string             `json:"type"`
	Function functionDefinition `json:"function"`
}

type functionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

func buildMessages(history []ChatMessage) []chatMessage {
	messages := make([]chatMessage, 0, len(history))
	for _, msg := range history {
		messages = append(messages, chatMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
			Name:       msg.Name,
		})
	}
	return messages
}
