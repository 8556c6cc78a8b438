package handlers

import (
	"context"
	"net/http"

	"github.com/docfaq/docfaq/internal/api"
	"github.com/docfaq/docfaq/internal/domain"
	"github.com/docfaq/docfaq/internal/service"
)

// KnowledgeService exposes the knowledge base read model and the
// reload trigger.
type KnowledgeService interface {
	Snapshot() *domain.Snapshot
	Reload(ctx context.Context) error
	Status() service.EngineStatus
}

type KnowledgeHandler struct {
	svc KnowledgeService
}

func NewKnowledgeHandler(svc KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{svc: svc}
}

type EntryResponse struct {
	Label    string   `json:"label"`
	Body     string   `json:"body"`
	Patterns []string `json:"patterns"`
}

type KnowledgeResponse struct {
	Source     string          `json:"source,omitempty"`
	LoadedAt   string          `json:"loaded_at,omitempty"`
	EntryCount int             `json:"entry_count"`
	Entries    []EntryResponse `json:"entries"`
}

type StatusResponse struct {
	Source        string `json:"source,omitempty"`
	EntryCount    int    `json:"entry_count"`
	LoadedAt      string `json:"loaded_at,omitempty"`
	LastAttemptAt string `json:"last_attempt_at,omitempty"`
	LastError     string `json:"last_error,omitempty"`
}

const timeFormat = "2006-01-02T15:04:05Z"

// List returns the full knowledge snapshot.
func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Snapshot()

	entries := make([]EntryResponse, 0, snap.Len())
	for _, e := range snap.Entries {
		entries = append(entries, EntryResponse{
			Label:    e.Label,
			Body:     e.Body,
			Patterns: e.Patterns,
		})
	}

	resp := KnowledgeResponse{
		Source:     snap.Source,
		EntryCount: len(entries),
		Entries:    entries,
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = snap.LoadedAt.Format(timeFormat)
	}

	api.Success(w, http.StatusOK, resp)
}

// Reload triggers a synchronous rebuild of the knowledge base.
func (h *KnowledgeHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reload(r.Context()); err != nil {
		api.HandleError(w, err)
		return
	}

	status := h.svc.Status()
	api.Success(w, http.StatusOK, map[string]interface{}{
		"entry_count": status.EntryCount,
	})
}

// Status reports the engine's load state.
func (h *KnowledgeHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.svc.Status()

	resp := StatusResponse{
		Source:     status.Source,
		EntryCount: status.EntryCount,
		LastError:  status.LastError,
	}
	if !status.LoadedAt.IsZero() {
		resp.LoadedAt = status.LoadedAt.Format(timeFormat)
	}
	if !status.LastAttemptAt.IsZero() {
		resp.LastAttemptAt = status.LastAttemptAt.Format(timeFormat)
	}

	api.Success(w, http.StatusOK, resp)
}
