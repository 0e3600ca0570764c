package handlers

import (
	"net/http"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// VoiceAssistant answers spoken commands
type VoiceAssistant interface {
	Respond(utterance string) (entities.IntentMatch, time.Duration)
}

// VoiceHandler handles voice command requests
type VoiceHandler struct {
	assistant VoiceAssistant
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(assistant VoiceAssistant) *VoiceHandler {
	return &VoiceHandler{assistant: assistant}
}

type voiceCommandRequest struct {
	Utterance string `json:"utterance"`
}

type voiceCommandResponse struct {
	entities.IntentMatch
	NavigateAfterMs int64 `json:"navigate_after_ms"`
}

// HandleCommand handles POST /api/voice/commands. Blank utterances get the
// help response.
func (h *VoiceHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	var req voiceCommandRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	match, delay := h.assistant.Respond(req.Utterance)
	respondWithJSON(w, http.StatusOK, voiceCommandResponse{
		IntentMatch:     match,
		NavigateAfterMs: delay.Milliseconds(),
	})
}
