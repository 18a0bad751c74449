package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const mockCategoriesResponse = `[{"id":1,"name":"Food"},{"id":2,"name":"Electronics"}]`

const mockItemsResponse = `[{"id":10,"name":"Gourmet Pizza Place","category":{"id":1,"name":"Food"}},{"id":20,"name":"Laptop Pro X","category":{"id":2,"name":"Electronics"}},{"id":30,"name":"Orphan","category":null}]`

const mockFeedbackResponse = `[{"id":1,"rating":5,"comment":"Absolutely love it","item":{"id":20}},{"id":2,"rating":4,"comment":"Solid laptop","item":{"id":20}}]`

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:6969/")

	if client.BaseURL != "http://localhost:6969" {
		t.Errorf("BaseURL = %s, want http://localhost:6969", client.BaseURL)
	}

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should not be nil")
	}

	if client.HTTPClient.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0 (no timeout by default)", client.HTTPClient.Timeout)
	}
}

func TestNewClient_EmptyURL(t *testing.T) {
	client := NewClient("")

	_, err := client.FetchCategories(context.Background())
	if !IsNetworkError(err) {
		t.Fatalf("FetchCategories() error = %v, want network error", err)
	}
	if !strings.Contains(err.Error(), "no backend URL configured") {
		t.Errorf("error = %q, want it to mention the missing URL", err.Error())
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient("http://localhost:8081")
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestFetchCategories_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Request method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/categories" {
			t.Errorf("Request path = %s, want /api/categories", r.URL.Path)
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Error("Request should carry a request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockCategoriesResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	categories, err := client.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories() error = %v, want nil", err)
	}

	if len(categories) != 2 {
		t.Fatalf("len(categories) = %d, want 2", len(categories))
	}

	if categories[1].ID != 2 || categories[1].Name != "Electronics" {
		t.Errorf("categories[1] = %+v, want {2 Electronics}", categories[1])
	}
}

func TestFetchItems_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/items" {
			t.Errorf("Request path = %s, want /api/items", r.URL.Path)
		}
		w.Write([]byte(mockItemsResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items, err := client.FetchItems(context.Background())
	if err != nil {
		t.Fatalf("FetchItems() error = %v, want nil", err)
	}

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	if id, ok := items[1].CategoryID(); !ok || id != 2 {
		t.Errorf("items[1].CategoryID() = (%d, %v), want (2, true)", id, ok)
	}

	if _, ok := items[2].CategoryID(); ok {
		t.Error("items[2] should have no category")
	}
}

func TestFetchFeedback_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feedback" {
			t.Errorf("Request path = %s, want /api/feedback", r.URL.Path)
		}
		if got := r.URL.Query().Get("itemId"); got != "20" {
			t.Errorf("itemId = %s, want 20", got)
		}
		w.Write([]byte(mockFeedbackResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	feedback, err := client.FetchFeedback(context.Background(), 20)
	if err != nil {
		t.Fatalf("FetchFeedback() error = %v, want nil", err)
	}

	if len(feedback) != 2 {
		t.Fatalf("len(feedback) = %d, want 2", len(feedback))
	}

	if feedback[0].Rating != 5 || feedback[0].Item.ID != 20 {
		t.Errorf("feedback[0] = %+v, want rating 5 on item 20", feedback[0])
	}
}

func TestCreateFeedback_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Request method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}

		if payload["rating"] != float64(8) {
			t.Errorf("rating = %v, want 8", payload["rating"])
		}
		if payload["comment"] != "Great!" {
			t.Errorf("comment = %v, want Great!", payload["comment"])
		}
		item, ok := payload["item"].(map[string]any)
		if !ok || item["id"] != float64(20) {
			t.Errorf("item = %v, want {id: 20}", payload["item"])
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":99,"rating":8,"comment":"Great!","item":{"id":20}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	created, err := client.CreateFeedback(context.Background(), FeedbackInput{Rating: 8, Comment: "Great!", ItemID: 20})
	if err != nil {
		t.Fatalf("CreateFeedback() error = %v, want nil", err)
	}

	if created.ID != 99 {
		t.Errorf("created.ID = %d, want 99", created.ID)
	}
}

func TestCreateCategory_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/categories" {
			t.Errorf("Request = %s %s, want POST /api/categories", r.Method, r.URL.Path)
		}

		var payload CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if payload.Name != "Books" {
			t.Errorf("name = %s, want Books", payload.Name)
		}

		w.Write([]byte(`{"id":5,"name":"Books"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	created, err := client.CreateCategory(context.Background(), CategoryInput{Name: "Books"})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v, want nil", err)
	}

	if created.ID != 5 || created.Name != "Books" {
		t.Errorf("created = %+v, want {5 Books}", created)
	}
}

func TestNon2xxIsNetworkError(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(`{"error":"comment too short"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.CreateFeedback(context.Background(), FeedbackInput{Rating: 8, Comment: "Great!", ItemID: 1})

			if err == nil {
				t.Fatal("CreateFeedback() should return error for non-2xx")
			}

			if !IsNetworkError(err) {
				t.Errorf("error should be a network error, got %v", err)
			}

			if !IsHTTPError(err) {
				t.Errorf("error should be an HTTP error, got %v", err)
			}

			var gwErr *Error
			if e, ok := asError(err); ok {
				gwErr = e
			}
			if gwErr == nil || gwErr.StatusCode != status {
				t.Errorf("StatusCode = %v, want %d", gwErr, status)
			}
		})
	}
}

func TestFetch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchCategories(context.Background())

	if err == nil {
		t.Fatal("FetchCategories() should fail on malformed JSON")
	}

	if !IsParseError(err) {
		t.Errorf("error should be a parse error, got %v", err)
	}

	if IsNetworkError(err) {
		t.Error("parse errors should not be network errors")
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.FetchItems(context.Background())

	if err == nil {
		t.Fatal("FetchItems() should fail when nothing is listening")
	}

	if !IsNetworkError(err) {
		t.Errorf("error should be a network error, got %T: %v", err, err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL)
	client.SetTimeout(50 * time.Millisecond)

	_, err := client.FetchCategories(context.Background())
	if err == nil {
		t.Fatal("FetchCategories() should time out")
	}

	gwErr, ok := asError(err)
	if !ok || gwErr.Type != ErrTypeTimeout {
		t.Errorf("error type = %v, want %v", err, ErrTypeTimeout)
	}
}

func TestPing(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(mockCategoriesResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
