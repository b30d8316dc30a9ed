package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/arebot/horasbot/internal/ports"
)

// Handlers contains the HTTP route handlers of the chat surface.
type Handlers struct {
	sessions    *Sessions
	interpreter ports.Interpreter
}

type chatRequest struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// HandleChat handles POST /chat: resolve the caller's session, classify the
// message and execute the resulting intent. Expected failures come back as
// a response text with success=false, never as a 5xx.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	var request chatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "cuerpo de petición inválido"})
		return
	}
	if strings.TrimSpace(request.Token) == "" || strings.TrimSpace(request.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "token y message son obligatorios"})
		return
	}

	service, err := h.sessions.Get(r.Context(), request.Token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token inválido o expirado"})
		return
	}

	intent, err := h.interpreter.Interpret(r.Context(), request.Message)
	if err != nil {
		writeJSON(w, http.StatusOK, chatResponse{
			Response: "❌ No entendí tu mensaje. Intenta reformularlo.",
			Success:  false,
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response: service.Execute(r.Context(), intent),
		Success:  true,
	})
}

// HandleRoot handles GET /: a liveness line with the service name.
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "arebot"})
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleStats handles GET /stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"active_sessions": h.sessions.Len()})
}

// HandleDeleteSession handles DELETE /session/{token}: explicit eviction,
// the only way a cache entry goes away.
func (h *Handlers) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Delete(r.PathValue("token")) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Sesión eliminada"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sesión no encontrada"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
