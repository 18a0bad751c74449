package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/feedbackhub/internal/logging"
	"github.com/muurk/feedbackhub/internal/version"
)

const (
	// RequestIDHeader carries a per-request id for correlating client and backend logs
	RequestIDHeader = "X-Request-ID"

	categoriesPath = "/api/categories"
	itemsPath      = "/api/items"
	feedbackPath   = "/api/feedback"
)

// Client represents an HTTP client for the FeedbackHub backend
type Client struct {
	// BaseURL is the backend root, without the /api prefix (e.g. "http://localhost:8081")
	BaseURL string

	// HTTPClient is the underlying HTTP client. Its Timeout is zero unless
	// SetTimeout is called.
	HTTPClient *http.Client
}

// NewClient creates a new gateway client for the given backend root URL.
// The URL comes from configuration; an empty one makes every request fail.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the per-request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FetchCategories retrieves every category
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, "fetch categories", http.MethodGet, categoriesPath, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchItems retrieves every item with its category
func (c *Client) FetchItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, "fetch items", http.MethodGet, itemsPath, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchFeedback retrieves the feedback for one item. The id is passed through
// as-is; the backend decides what an unknown id means.
func (c *Client) FetchFeedback(ctx context.Context, itemID int64) ([]Feedback, error) {
	query := url.Values{}
	query.Set("itemId", strconv.FormatInt(itemID, 10))

	var feedback []Feedback
	if err := c.do(ctx, "fetch feedback", http.MethodGet, feedbackPath, query, nil, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// CreateFeedback posts new feedback. The backend assigns the id.
func (c *Client) CreateFeedback(ctx context.Context, in FeedbackInput) (Feedback, error) {
	body := feedbackRequest{
		Rating:  in.Rating,
		Comment: in.Comment,
		Item:    ItemRef{ID: in.ItemID},
	}

	var created Feedback
	if err := c.do(ctx, "create feedback", http.MethodPost, feedbackPath, nil, body, &created); err != nil {
		return Feedback{}, err
	}
	return created, nil
}

// CreateCategory posts a new category. The backend assigns the id.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	var created Category
	if err := c.do(ctx, "create category", http.MethodPost, categoriesPath, nil, in, &created); err != nil {
		return Category{}, err
	}
	return created, nil
}

// Ping checks that the backend answers the category listing with a 2xx.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, categoriesPath, nil, nil, nil)
}

// do performs one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	if c.BaseURL == "" {
		return &Error{Type: ErrTypeNetwork, Op: op, Message: "no backend URL configured"}
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Type: ErrTypeValidation, Op: op, Message: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Op: op, Message: "failed to create request", Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.LogRequest(requestID, method, endpoint)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		gwErr := ClassifyTransportError(op, err)
		logging.Warn("Request failed",
			zap.String("request_id", requestID),
			zap.String("op", op),
			zap.Stringer("type", gwErr.Type),
			zap.Error(err),
		)
		return gwErr
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogResponse(requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies are not part of the contract; drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return NewHTTPError(op, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Op: op, Message: "failed to read response body", Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError(op, fmt.Errorf("%s %s: %w", method, path, err))
	}

	return nil
}
