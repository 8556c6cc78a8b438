package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docfaq/docfaq/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnswerService is a mock implementation of AnswerService
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Answer(query string) service.AnswerResult {
	args := m.Called(query)
	return args.Get(0).(service.AnswerResult)
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAsk_Confident(t *testing.T) {
	svc := new(MockAnswerService)
	svc.On("Answer", "tell me about the CAB").Return(service.AnswerResult{
		Matched:           true,
		Label:             "What is a CAB?",
		Body:              "A Change Advisory Board reviews RFCs.",
		ConfidencePercent: 100,
	})
	handler := NewAskHandler(svc)

	body, _ := json.Marshal(AskRequest{Query: "tell me about the CAB"})
	req := httptest.NewRequest("POST", "/ask", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Ask(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AskResponse
	decodeData(t, w, &resp)
	assert.True(t, resp.Matched)
	assert.Equal(t, "A Change Advisory Board reviews RFCs.", resp.Answer)
	assert.Equal(t, "What is a CAB?", resp.Label)
	assert.Equal(t, 100, resp.ConfidencePercent)
	assert.Empty(t, resp.FallbackMessage)

	svc.AssertExpectations(t)
}

func TestAsk_Fallback(t *testing.T) {
	svc := new(MockAnswerService)
	svc.On("Answer", "banana spaceship").Return(service.AnswerResult{
		Matched:           false,
		ConfidencePercent: 12,
		FallbackMessage:   "I couldn't confidently match that question. Try rephrasing it.",
	})
	handler := NewAskHandler(svc)

	body, _ := json.Marshal(AskRequest{Query: "banana spaceship"})
	req := httptest.NewRequest("POST", "/ask", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Ask(w, req)

	require.Equal(t, http.StatusOK, w.Code, "a low-confidence outcome is not an HTTP error")

	var resp AskResponse
	decodeData(t, w, &resp)
	assert.False(t, resp.Matched)
	assert.Empty(t, resp.Answer)
	assert.Equal(t, 12, resp.ConfidencePercent)
	assert.NotEmpty(t, resp.FallbackMessage)
}

func TestAsk_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{nope"},
		{"empty query", `{"query": ""}`},
		{"missing query", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAskHandler(new(MockAnswerService))

			req := httptest.NewRequest("POST", "/ask", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()
			handler.Ask(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
