package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arebot/horasbot/internal/adapters/interpreter"
	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

const (
	defaultModel     = "gpt-4o-mini"
	maxResponseBytes = 1 << 20
)

// Interpreter classifies chat messages with the OpenAI chat-completions API.
type Interpreter struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	clock      ports.Clock
}

var _ ports.Interpreter = (*Interpreter)(nil)

func New(baseURL, apiKey, model string, httpClient *http.Client, clock ports.Clock) (*Interpreter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Interpreter{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
		clock:      clock,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (i *Interpreter) Interpret(ctx context.Context, message string) (domain.Intent, error) {
	payload := chatRequest{
		Model: i.model,
		Messages: []chatMessage{
			{Role: "system", Content: interpreter.SystemPrompt(i.clock.Now())},
			{Role: "user", Content: message},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	}

	content, err := i.complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	intent, err := interpreter.DecodeReply(content)
	if err != nil {
		// The model answered something that is not a command. Treat it as
		// conversation instead of failing the whole request.
		return domain.Conversation{Reply: interpreter.FallbackReply}, nil
	}

	return intent, nil
}

func (i *Interpreter) complete(ctx context.Context, payload chatRequest) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/v1/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+i.apiKey)
	request.Header.Set("Content-Type", "application/json")

	response, err := i.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
