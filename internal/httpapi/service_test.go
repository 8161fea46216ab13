package httpapi

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ashgrove-labs/wordle-solver/logger"
	"github.com/ashgrove-labs/wordle-solver/matrix"
	"github.com/ashgrove-labs/wordle-solver/models"
	"github.com/ashgrove-labs/wordle-solver/word"
)

func buildTestMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()
	words := []string{
		"crate", "slate", "mount", "fizzy", "pious", "zebra", "humph", "crimp",
		"brisk", "vouch", "adopt", "nymph",
	}
	ws := make([]word.Word, len(words))
	for i, w := range words {
		ws[i] = word.MustNew(w)
	}
	m, err := matrix.Build(ws, ws, 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(buildTestMatrix(t), logger.New())
}

func TestSuggestStreamRejectsNonPost(t *testing.T) {
	svc := newTestService(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suggest/stream", nil)
	rec := httptest.NewRecorder()
	svc.SuggestStream(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestSuggestStreamEmitsEvents(t *testing.T) {
	svc := newTestService(t)

	body, _ := json.Marshal(models.SuggestRequest{MaxDepth: 2})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest/stream", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	svc.SuggestStream(rec, req)

	if rec.Code != http.StatusOK && rec.Code != 0 {
		t.Fatalf("status = %d, want 200-ish", rec.Code)
	}

	var eventNames []string
	scanner := bufio.NewScanner(rec.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			eventNames = append(eventNames, strings.TrimPrefix(line, "event: "))
		}
	}

	if len(eventNames) < 2 {
		t.Fatalf("got %d SSE events, want at least 2: %v", len(eventNames), eventNames)
	}
	if eventNames[0] != "stream-created" {
		t.Errorf("first event = %s, want stream-created", eventNames[0])
	}
	if eventNames[len(eventNames)-1] != "stream-completed" {
		t.Errorf("last event = %s, want stream-completed", eventNames[len(eventNames)-1])
	}

	suggestionEvents := 0
	for _, e := range eventNames {
		if e == "suggestions" {
			suggestionEvents++
		}
	}
	if suggestionEvents != 2 {
		t.Errorf("got %d suggestions events, want 2 (one per depth)", suggestionEvents)
	}
}

func TestSuggestStreamRejectsBadBody(t *testing.T) {
	svc := newTestService(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest/stream", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	svc.SuggestStream(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCloseStreamNotFound(t *testing.T) {
	svc := newTestService(t)
	body, _ := json.Marshal(models.CloseRequest{StreamID: "nonexistent"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest/close", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	svc.CloseStream(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
