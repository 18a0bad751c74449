// Package apitest runs an in-process fake of the FeedbackHub REST API for
// tests. It keeps data in memory, records every request, and can be told to
// fail a given route with a status code.
//
//	srv := apitest.NewServer(t)
//	client := gateway.NewClient(srv.URL)
//	...
//	if got := srv.Count("POST", "/api/feedback"); got != 1 { ... }
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/muurk/feedbackhub/internal/gateway"
)

// Request is one recorded call.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Header http.Header
}

// Server is a fake backend. Create it with NewServer; it is closed by
// t.Cleanup.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	categories []gateway.Category
	items      []gateway.Item
	feedback   []gateway.Feedback
	nextID     int64
	requests   []Request
	failures   map[string]int
	raw        map[string]string
}

// NewServer starts a fake backend seeded with DefaultCategories,
// DefaultItems and DefaultFeedback.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		failures: make(map[string]int),
		raw:      make(map[string]string),
		nextID:   1000,
	}
	s.Seed(DefaultCategories(), DefaultItems(), DefaultFeedback())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", s.record(s.listCategories))
	mux.HandleFunc("POST /api/categories", s.record(s.createCategory))
	mux.HandleFunc("GET /api/items", s.record(s.listItems))
	mux.HandleFunc("GET /api/feedback", s.record(s.listFeedback))
	mux.HandleFunc("POST /api/feedback", s.record(s.createFeedback))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Seed replaces all data.
func (s *Server) Seed(categories []gateway.Category, items []gateway.Item, feedback []gateway.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]gateway.Category(nil), categories...)
	s.items = append([]gateway.Item(nil), items...)
	s.feedback = append([]gateway.Feedback(nil), feedback...)
}

// FailWith makes every request to "METHOD path" answer with status until
// cleared with FailWith(method, path, 0).
func (s *Server) FailWith(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	if status == 0 {
		delete(s.failures, key)
		return
	}
	s.failures[key] = status
}

// RespondRaw makes "METHOD path" answer 200 with body verbatim.
func (s *Server) RespondRaw(method, path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[method+" "+path] = body
}

// Requests returns every recorded request in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// ResetRequests forgets recorded requests.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Feedback returns the stored feedback for itemID.
func (s *Server) Feedback(itemID int64) []gateway.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedbackFor(itemID)
}

func (s *Server) record(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
			Header: r.Header.Clone(),
		})
		status, failing := s.failures[key]
		raw, isRaw := s.raw[key]
		s.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		if isRaw {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, raw)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.categories)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var in gateway.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c := gateway.Category{ID: s.nextID, Name: in.Name}
	s.categories = append(s.categories, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.items)
}

func (s *Server) listFeedback(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.URL.Query().Get("itemId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "itemId is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.feedbackFor(itemID))
}

func (s *Server) createFeedback(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Rating  int             `json:"rating"`
		Comment string          `json:"comment"`
		Item    gateway.ItemRef `json:"item"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed body"})
		return
	}
	if in.Rating < gateway.MinRating || in.Rating > gateway.MaxRating {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rating out of range"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	f := gateway.Feedback{ID: s.nextID, Rating: in.Rating, Comment: in.Comment, Item: in.Item}
	s.feedback = append(s.feedback, f)
	writeJSON(w, http.StatusCreated, f)
}

// feedbackFor must be called with mu held. It never returns nil so the
// response body is [] rather than null.
func (s *Server) feedbackFor(itemID int64) []gateway.Feedback {
	out := []gateway.Feedback{}
	for _, f := range s.feedback {
		if f.Item.ID == itemID {
			out = append(out, f)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
