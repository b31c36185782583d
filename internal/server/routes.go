package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/wordbook/internal/dictionary"
	"github.com/lazypower/wordbook/internal/quiz"
	"github.com/lazypower/wordbook/internal/vocab"
)

// wordView is the JSON shape of an entry with its derived fields.
type wordView struct {
	vocab.Entry
	Attempts int     `json:"attempts"`
	Accuracy float64 `json:"accuracy"`
	Retired  bool    `json:"retired"`
}

func (s *Server) view(e vocab.Entry) wordView {
	return wordView{
		Entry:    e,
		Attempts: e.Attempts(),
		Accuracy: e.Accuracy(),
		Retired:  e.Retired(s.maxAttempts),
	}
}

func (s *Server) views(entries []vocab.Entry) []wordView {
	out := make([]wordView, len(entries))
	for i, e := range entries {
		out[i] = s.view(e)
	}
	return out
}

// update loads the store, applies fn, and saves when fn reports a change.
func (s *Server) update(fn func(*vocab.Store) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.file.Load()
	if err != nil {
		return err
	}
	changed, err := fn(st)
	if err != nil || !changed {
		return err
	}
	return s.file.Save(st)
}

// labelParam returns the decoded {label} segment. chi matches on RawPath
// when the request carries one, leaving the segment escaped; otherwise it
// matches on the already decoded Path and the segment must not be decoded
// again.
func labelParam(r *http.Request) string {
	label := chi.URLParam(r, "label")
	if r.URL.RawPath == "" {
		return label
	}
	if decoded, err := url.PathUnescape(label); err == nil {
		return decoded
	}
	return label
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	var entries []vocab.Entry
	err := s.update(func(st *vocab.Store) (bool, error) {
		entries = st.Entries()
		return false, nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": s.views(entries)})
}

func (s *Server) handleRegisterWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var (
		entry vocab.Entry
		added bool
	)
	err := s.update(func(st *vocab.Store) (bool, error) {
		var err error
		entry, added, err = st.Register(req.Label)
		return added, err
	})
	if errors.Is(err, vocab.ErrEmptyLabel) {
		writeError(w, http.StatusBadRequest, "label required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, s.view(entry))
}

// forgetter is implemented by lookups that cache definitions.
type forgetter interface {
	Forget(word string) error
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	label := labelParam(r)

	err := s.update(func(st *vocab.Store) (bool, error) {
		return st.Remove(label), nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if f, ok := s.lookup.(forgetter); ok {
		if err := f.Forget(label); err != nil {
			slog.WarnContext(r.Context(), "evict cached definition", slog.String("word", label), slog.String("error", err.Error()))
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	label := labelParam(r)

	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	outcome := quiz.ParseAnswer(req.Answer)
	if outcome == quiz.Invalid {
		writeError(w, http.StatusBadRequest, "answer must be y, n or blank")
		return
	}

	var (
		entry vocab.Entry
		found bool
	)
	err := s.update(func(st *vocab.Store) (bool, error) {
		entry, found = st.Record(label, outcome == quiz.Correct)
		return found, nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "word not registered")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"outcome": outcome.String(),
		"word":    s.view(entry),
	})
}

func (s *Server) handleDefinition(w http.ResponseWriter, r *http.Request) {
	if s.lookup == nil {
		writeError(w, http.StatusServiceUnavailable, "dictionary not configured")
		return
	}
	label := labelParam(r)

	text, err := s.lookup.Lookup(r.Context(), label)
	if errors.Is(err, dictionary.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		slog.WarnContext(r.Context(), "definition lookup failed", slog.String("word", label), slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"word": label, "definition": text})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	n := 10
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	var batch []vocab.Entry
	err := s.update(func(st *vocab.Store) (bool, error) {
		batch = st.Select(n, vocab.CompareMastery, s.maxAttempts)
		return false, nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": s.views(batch)})
}
