package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/docfaq/docfaq/internal/api"
	"github.com/docfaq/docfaq/internal/service"
)

// AnswerService resolves a free-text query against the current
// knowledge base.
type AnswerService interface {
	Answer(query string) service.AnswerResult
}

type AskHandler struct {
	svc AnswerService
}

func NewAskHandler(svc AnswerService) *AskHandler {
	return &AskHandler{svc: svc}
}

type AskRequest struct {
	Query string `json:"query"`
}

type AskResponse struct {
	Matched           bool   `json:"matched"`
	Answer            string `json:"answer,omitempty"`
	Label             string `json:"label,omitempty"`
	ConfidencePercent int    `json:"confidence_percent"`
	FallbackMessage   string `json:"fallback_message,omitempty"`
}

// Ask answers a free-text question. A low-confidence outcome is a
// normal 200 response carrying the fallback message, not an error.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Query == "" {
		api.Error(w, http.StatusBadRequest, "query is required")
		return
	}

	result := h.svc.Answer(req.Query)
	api.Success(w, http.StatusOK, AskResponse{
		Matched:           result.Matched,
		Answer:            result.Body,
		Label:             result.Label,
		ConfidencePercent: result.ConfidencePercent,
		FallbackMessage:   result.FallbackMessage,
	})
}
