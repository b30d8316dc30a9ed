package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/arebot/horasbot/internal/adapters/interpreter"
	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

const defaultModel = "gemini-2.0-flash"

// Interpreter classifies chat messages with the Google GenAI API.
type Interpreter struct {
	client *genai.Client
	model  string
	clock  ports.Clock
}

var _ ports.Interpreter = (*Interpreter)(nil)

func New(ctx context.Context, apiKey, model string, clock ports.Clock) (*Interpreter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Interpreter{
		client: client,
		model:  model,
		clock:  clock,
	}, nil
}

func (i *Interpreter) Interpret(ctx context.Context, message string) (domain.Intent, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(interpreter.SystemPrompt(i.clock.Now()), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
	}

	result, err := i.client.Models.GenerateContent(ctx, i.model, genai.Text(message), config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	intent, err := interpreter.DecodeReply(result.Text())
	if err != nil {
		return domain.Conversation{Reply: interpreter.FallbackReply}, nil
	}

	return intent, nil
}
