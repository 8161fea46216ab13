// Package httpapi serves progressive guess suggestions over
// Server-Sent Events, generalizing the teacher's handlers package from a
// single constraint-propagation strategy to the Matrix/Posterior ranking
// pipeline (spec §4.4-§4.6, §7).
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/logger"
	"github.com/ashgrove-labs/wordle-solver/matrix"
	"github.com/ashgrove-labs/wordle-solver/models"
	"github.com/ashgrove-labs/wordle-solver/pattern"
	"github.com/ashgrove-labs/wordle-solver/players"
	"github.com/ashgrove-labs/wordle-solver/posterior"
)

// rankedLimit is the number of top candidates streamed per depth event.
const rankedLimit = 5

// Service serves the suggestion HTTP/SSE endpoints over a shared Matrix.
// It tracks active streams for cancellation the same way the teacher's
// handlers package does (activeStreams map + RWMutex).
type Service struct {
	matrix *matrix.Matrix
	log    *logger.Logger

	mu            sync.RWMutex
	activeStreams map[string]chan struct{}
}

// NewService creates a Service ranking guesses against m.
func NewService(m *matrix.Matrix, log *logger.Logger) *Service {
	return &Service{
		matrix:        m,
		log:           log,
		activeStreams: make(map[string]chan struct{}),
	}
}

// replayHistory rebuilds the Posterior implied by a game's guess history by
// replaying Filter over the initial Posterior (spec §4.1: GameState is
// fully reconstructable from history).
func replayHistory(m *matrix.Matrix, history []models.GuessEntry) (*posterior.Posterior, error) {
	p, err := posterior.NewInitial(m, nil)
	if err != nil {
		return nil, err
	}
	for _, entry := range history {
		code := pattern.Encode(entry.Pattern)
		next, err := p.Filter(code, entry.Guess)
		if err != nil {
			return nil, err
		}
		p = next
	}
	return p, nil
}

// rankDepth1 ranks guesses by one-step expected information gain (spec
// §4.5), the Greedy player's scoring function.
func rankDepth1(p *posterior.Posterior) []models.SuggestionItem {
	scores := p.AllCandidateEntropies()
	n := rankedLimit
	if n > len(scores) {
		n = len(scores)
	}
	out := make([]models.SuggestionItem, n)
	for i := 0; i < n; i++ {
		out[i] = models.SuggestionItem{Word: scores[i].Guess.String(), Score: scores[i].Score}
	}
	return out
}

// rankDepth2 ranks guesses by combined one-step and expected two-step
// entropy (spec §4.6), the Two-Step player's scoring function, shortlisted
// to the same width as the CLI's two-step player.
func rankDepth2(p *posterior.Posterior) ([]models.SuggestionItem, error) {
	ts, err := players.NewTwoStep(p, players.WithShortlistSize(players.DefaultShortlistSize))
	if err != nil {
		return nil, err
	}
	ranked := ts.RankCandidates(p, players.DefaultShortlistSize)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })

	n := rankedLimit
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]models.SuggestionItem, n)
	for i := 0; i < n; i++ {
		out[i] = models.SuggestionItem{Word: ranked[i].Guess.String(), Score: ranked[i].Total}
	}
	return out, nil
}

// SuggestStream handles POST /api/v1/suggest/stream: it decodes a game
// state, opens an SSE stream tagged with a fresh stream ID, and emits one
// suggestions event per ranking depth up to req.MaxDepth, clamped to [1, 2]
// (1 for Greedy-only, 2 to also emit the Two-Step ranking).
func (s *Service) SuggestStream(w http.ResponseWriter, r *http.Request) {
	s.log.Info("SuggestStream handler called", "method", r.Method, "path", r.RequestURI)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Error("error decoding request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	streamID := uuid.New().String()
	streamLog := s.log.WithTag(streamID)

	belief, err := replayHistory(s.matrix, req.GameState.History)
	if err != nil {
		streamLog.Error("error replaying history", "error", err)
		status := http.StatusBadRequest
		if errors.Is(err, wordleerr.ErrEmptyPosterior) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	closeChan := make(chan struct{})
	s.mu.Lock()
	s.activeStreams[streamID] = closeChan
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.activeStreams, streamID)
		s.mu.Unlock()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		streamLog.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	writeEvent(w, flusher, "stream-created", map[string]string{"streamId": streamID})
	streamLog.Info("stream created", "historyLength", len(req.GameState.History), "maxDepth", req.MaxDepth)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		select {
		case <-closeChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	maxDepth := req.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}
	if maxDepth > 2 {
		maxDepth = 2
	}

	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			streamLog.Debug("stream cancelled", "depth", depth)
			return
		default:
		}

		var suggestions []models.SuggestionItem
		if depth == 1 {
			suggestions = rankDepth1(belief)
		} else {
			suggestions, err = rankDepth2(belief)
			if err != nil {
				streamLog.Error("error ranking depth", "depth", depth, "error", err)
				break
			}
		}

		var top *models.SuggestionItem
		if len(suggestions) > 0 {
			top = &suggestions[0]
		}

		writeEvent(w, flusher, "suggestions", models.SuggestionsEvent{
			StreamID:         streamID,
			Suggestions:      suggestions,
			TopSuggestion:    top,
			Depth:            depth,
			RemainingAnswers: belief.Len(),
		})
	}

	writeEvent(w, flusher, "stream-completed", map[string]string{"streamId": streamID, "status": "completed"})
	streamLog.Info("stream handler exiting")
}

// CloseStream handles POST /api/v1/suggest/close: it signals cancellation
// to an ongoing SuggestStream call identified by StreamID.
func (s *Service) CloseStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	closeChan, exists := s.activeStreams[req.StreamID]
	s.mu.RUnlock()

	if !exists {
		http.Error(w, "Stream not found", http.StatusNotFound)
		return
	}

	select {
	case closeChan <- struct{}{}:
	default:
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "closed"})
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}
