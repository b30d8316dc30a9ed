// Package interpreter holds the pieces shared by the NL classifier
// adapters: the system prompt and the decoding of the classifier's
// JSON command into a typed intent.
package interpreter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arebot/horasbot/internal/domain"
)

// FallbackReply is returned as a conversational intent when the classifier
// produced output the bot cannot decode.
const FallbackReply = "Lo siento, no entendí bien tu mensaje. ¿Podrías reformularlo?"

type commandPayload struct {
	Tipo         string              `json:"tipo"`
	Respuesta    string              `json:"respuesta"`
	Fecha        string              `json:"fecha"`
	Imputaciones []imputacionPayload `json:"imputaciones"`
}

type imputacionPayload struct {
	Proyecto string   `json:"proyecto"`
	Horas    float64  `json:"horas"`
	Dias     []string `json:"dias"`
}

// DecodeReply parses the classifier's raw reply into an intent. Markdown
// code fences around the JSON are tolerated. A tag outside the known set
// decodes to UnknownIntent so the dispatcher can report it; undecodable
// JSON is an error and callers fall back to FallbackReply.
func DecodeReply(content string) (domain.Intent, error) {
	cleaned := stripFences(content)

	var payload commandPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decode classifier reply: %w", err)
	}

	switch payload.Tipo {
	case "conversacion":
		return domain.Conversation{Reply: payload.Respuesta}, nil
	case "listar_proyectos":
		return domain.ListProjects{}, nil
	case "consulta_semana":
		return domain.WeekQuery{Date: payload.Fecha}, nil
	case "imputar":
		entries := make([]domain.Entry, 0, len(payload.Imputaciones))
		for _, imp := range payload.Imputaciones {
			entries = append(entries, domain.Entry{
				Project: imp.Proyecto,
				Hours:   imp.Horas,
				Days:    normalizeDays(imp.Dias),
			})
		}
		return domain.LogHours{Entries: entries}, nil
	default:
		return domain.UnknownIntent{Tag: payload.Tipo}, nil
	}
}

func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if after, ok := strings.CutPrefix(trimmed, "```json"); ok {
		trimmed = after
	} else if after, ok := strings.CutPrefix(trimmed, "```"); ok {
		trimmed = after
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

var accentFolder = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// normalizeDays lowercases and accent-folds day names so the core only ever
// sees the canonical accent-free forms ("miércoles" -> "miercoles").
func normalizeDays(days []string) []string {
	normalized := make([]string, 0, len(days))
	for _, day := range days {
		normalized = append(normalized, accentFolder.Replace(strings.ToLower(strings.TrimSpace(day))))
	}
	return normalized
}
