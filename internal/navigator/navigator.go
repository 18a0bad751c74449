package navigator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/logging"
)

var (
	// ErrInvalidTransition is returned when a transition is not allowed from
	// the current state.
	ErrInvalidTransition = errors.New("transition not allowed in current state")

	// ErrBusy is returned when another transition is still running.
	ErrBusy = errors.New("another operation is in progress")
)

// User-facing failure messages.
const (
	MsgLoadFailedFormat     = "Could not load data. Please make sure the backend server is running on %s."
	MsgFeedbackLoadFailed   = "Could not load feedback for this item."
	MsgSubmitFailed         = "Failed to submit your feedback. Please try again."
	MsgCreateCategoryFailed = "Failed to create category. Is the backend running?"
	MsgCategoryCreated      = "Successfully created category: %q with ID: %d"
)

// Gateway is the subset of the backend client the navigator needs.
// *gateway.Client satisfies it.
type Gateway interface {
	FetchCategories(ctx context.Context) ([]gateway.Category, error)
	FetchItems(ctx context.Context) ([]gateway.Item, error)
	FetchFeedback(ctx context.Context, itemID int64) ([]gateway.Feedback, error)
	CreateFeedback(ctx context.Context, in gateway.FeedbackInput) (gateway.Feedback, error)
	CreateCategory(ctx context.Context, in gateway.CategoryInput) (gateway.Category, error)
}

// Navigator owns the browsing state. All methods are safe for concurrent use.
type Navigator struct {
	gw      Gateway
	baseURL string

	mu    sync.Mutex
	state Snapshot
	busy  bool
}

// New creates a navigator in the Browsing state with nothing loaded.
// baseURL only appears in the load failure message.
func New(gw Gateway, baseURL string) *Navigator {
	return &Navigator{gw: gw, baseURL: baseURL}
}

// Snapshot returns a copy of the current state.
func (n *Navigator) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.clone()
}

// State returns the active view.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.State()
}

// Busy reports whether a transition is running.
func (n *Navigator) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.busy
}

// begin checks the state, runs prepare, marks the navigator busy and resets
// the loading/error/notice flags, all under one lock. prepare may modify the
// state and aborts the transition by returning an error. The caller must call
// end once begin succeeds.
func (n *Navigator) begin(allowed State, prepare func(s *Snapshot) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.busy {
		return ErrBusy
	}
	if n.state.State() != allowed {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, n.state.State())
	}
	if prepare != nil {
		if err := prepare(&n.state); err != nil {
			return err
		}
	}

	n.busy = true
	n.state.Loading = true
	n.state.Error = ""
	n.state.Notice = ""
	return nil
}

// rejectInput records a validation failure without starting a request.
func rejectInput(s *Snapshot, err error) error {
	s.Error = gateway.ValidationMessage(err)
	s.Notice = ""
	return err
}

// end clears the busy flag and applies commit under the lock.
func (n *Navigator) end(commit func(s *Snapshot)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if commit != nil {
		commit(&n.state)
	}
	n.state.Loading = false
	n.busy = false
}

// fail records msg unless err came from a cancelled context.
func fail(s *Snapshot, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.Error = msg
}

// Load fetches categories and items in parallel. Both snapshots are replaced
// only if both requests succeed.
func (n *Navigator) Load(ctx context.Context) error {
	if err := n.begin(Browsing, nil); err != nil {
		return err
	}

	var (
		categories []gateway.Category
		items      []gateway.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = n.gw.FetchCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = n.gw.FetchItems(gctx)
		return err
	})
	err := g.Wait()

	n.end(func(s *Snapshot) {
		if err != nil {
			fail(s, err, fmt.Sprintf(MsgLoadFailedFormat, n.baseURL))
			return
		}
		s.Categories = categories
		s.Items = items
		s.Loaded = true
	})

	if err != nil {
		logging.Warn("Initial load failed", zap.Error(err))
		return fmt.Errorf("load: %w", err)
	}

	logging.LogTransition("load", Browsing.String(), Browsing.String(),
		zap.Int("categories", len(categories)),
		zap.Int("items", len(items)),
	)
	return nil
}

// SelectCategory moves from Browsing to CategorySelected.
func (n *Navigator) SelectCategory(category gateway.Category) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.busy {
		return ErrBusy
	}
	if n.state.State() != Browsing {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, n.state.State())
	}

	n.state.SelectedCategory = &category
	logging.LogTransition("select_category", Browsing.String(), CategorySelected.String(),
		zap.Int64("category_id", category.ID),
	)
	return nil
}

// Back moves one level up: ItemSelected to CategorySelected (clearing the
// feedback list), or CategorySelected to Browsing.
func (n *Navigator) Back() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.busy {
		return ErrBusy
	}

	from := n.state.State()
	switch from {
	case ItemSelected:
		n.state.SelectedItem = nil
		n.state.Feedback = nil
	case CategorySelected:
		n.state.SelectedCategory = nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTransition, from)
	}

	logging.LogTransition("back", from.String(), n.state.State().String())
	return nil
}

// SelectItem moves from CategorySelected to ItemSelected and fetches the
// item's feedback. The item must belong to the selected category. The state
// stays ItemSelected even if the fetch fails.
func (n *Navigator) SelectItem(ctx context.Context, item gateway.Item) error {
	err := n.begin(CategorySelected, func(s *Snapshot) error {
		if id, ok := item.CategoryID(); !ok || id != s.SelectedCategory.ID {
			return fmt.Errorf("%w: item %d is not in category %d", ErrInvalidTransition, item.ID, s.SelectedCategory.ID)
		}
		selected := cloneItem(item)
		s.SelectedItem = &selected
		s.Feedback = nil
		return nil
	})
	if err != nil {
		return err
	}

	logging.LogTransition("select_item", CategorySelected.String(), ItemSelected.String(),
		zap.Int64("item_id", item.ID),
	)

	feedback, err := n.gw.FetchFeedback(ctx, item.ID)

	n.end(func(s *Snapshot) {
		if err != nil {
			fail(s, err, MsgFeedbackLoadFailed)
			return
		}
		s.Feedback = feedback
	})

	if err != nil {
		logging.Warn("Feedback fetch failed", zap.Int64("item_id", item.ID), zap.Error(err))
		return fmt.Errorf("fetch feedback: %w", err)
	}
	return nil
}

// SubmitFeedback validates the input, creates the feedback and re-fetches
// the item's feedback list. The list is replaced only if both calls succeed.
func (n *Navigator) SubmitFeedback(ctx context.Context, rating int, comment string) error {
	in := gateway.FeedbackInput{Rating: rating, Comment: comment}
	err := n.begin(ItemSelected, func(s *Snapshot) error {
		in.ItemID = s.SelectedItem.ID
		if err := gateway.ValidateFeedbackInput(in); err != nil {
			return rejectInput(s, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	itemID := in.ItemID

	_, feedback, err := gateway.SubmitFeedback(ctx, n.gw, in)

	n.end(func(s *Snapshot) {
		if err != nil {
			fail(s, err, MsgSubmitFailed)
			return
		}
		s.Feedback = feedback
	})

	if err != nil {
		logging.Warn("Feedback submission failed", zap.Int64("item_id", itemID), zap.Error(err))
		return err
	}

	logging.LogTransition("submit_feedback", ItemSelected.String(), ItemSelected.String(),
		zap.Int64("item_id", itemID),
		zap.Int("rating", rating),
		zap.Int("feedback_count", len(feedback)),
	)
	return nil
}

// CreateCategory validates the name, creates the category and re-fetches the
// category list. On success the notice names the created category and the
// created category is returned so the caller can clear its input.
func (n *Navigator) CreateCategory(ctx context.Context, name string) (gateway.Category, error) {
	err := n.begin(Browsing, func(s *Snapshot) error {
		if err := gateway.ValidateCategoryName(name); err != nil {
			return rejectInput(s, err)
		}
		return nil
	})
	if err != nil {
		return gateway.Category{}, err
	}

	created, categories, err := n.createAndRefreshCategories(ctx, name)

	n.end(func(s *Snapshot) {
		if err != nil {
			fail(s, err, MsgCreateCategoryFailed)
			return
		}
		s.Categories = categories
		s.Notice = fmt.Sprintf(MsgCategoryCreated, created.Name, created.ID)
	})

	if err != nil {
		logging.Warn("Category creation failed", zap.String("name", name), zap.Error(err))
		return gateway.Category{}, err
	}

	logging.LogTransition("create_category", Browsing.String(), Browsing.String(),
		zap.Int64("category_id", created.ID),
		zap.Int("categories", len(categories)),
	)
	return created, nil
}

func (n *Navigator) createAndRefreshCategories(ctx context.Context, name string) (gateway.Category, []gateway.Category, error) {
	created, err := n.gw.CreateCategory(ctx, gateway.CategoryInput{Name: name})
	if err != nil {
		return gateway.Category{}, nil, fmt.Errorf("create category: %w", err)
	}

	categories, err := n.gw.FetchCategories(ctx)
	if err != nil {
		return gateway.Category{}, nil, fmt.Errorf("refresh categories: %w", err)
	}
	return created, categories, nil
}
