package navigator_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/feedbackhub/internal/apitest"
	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/navigator"
)

func TestNavigator_AgainstFakeBackend(t *testing.T) {
	srv := apitest.NewServer(t)
	client := gateway.NewClient(srv.URL)
	nav := navigator.New(client, srv.URL)
	ctx := context.Background()

	require.NoError(t, nav.Load(ctx))
	snap := nav.Snapshot()
	require.Len(t, snap.Categories, 4)

	require.NoError(t, nav.SelectCategory(snap.Categories[1]))
	items := nav.Snapshot().ItemsForSelectedCategory()
	require.Len(t, items, 2)
	assert.Equal(t, apitest.LaptopID, items[0].ID)

	require.NoError(t, nav.SelectItem(ctx, items[0]))
	assert.Equal(t, "4.5", nav.Snapshot().Stats().FormatAverage())

	srv.ResetRequests()
	require.NoError(t, nav.SubmitFeedback(ctx, 8, "Great!"))

	reqs := srv.Requests()
	require.Len(t, reqs, 2, "submit is one create plus one refresh")
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/feedback", reqs[0].Path)
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, "itemId=201", reqs[1].Query)

	assert.Equal(t, srv.Feedback(apitest.LaptopID), nav.Snapshot().Feedback,
		"rendered list is exactly the server's response")
}

func TestNavigator_CreateCategoryAgainstFakeBackend(t *testing.T) {
	srv := apitest.NewServer(t)
	nav := navigator.New(gateway.NewClient(srv.URL), srv.URL)
	ctx := context.Background()
	require.NoError(t, nav.Load(ctx))
	srv.ResetRequests()

	created, err := nav.CreateCategory(ctx, "Books")
	require.NoError(t, err)

	assert.Equal(t, 1, srv.Count(http.MethodPost, "/api/categories"))
	assert.Equal(t, 1, srv.Count(http.MethodGet, "/api/categories"))
	assert.Contains(t, nav.Snapshot().Categories, created)
	assert.Contains(t, nav.Snapshot().Notice, `"Books"`)
}

func TestNavigator_BackendErrorStatus(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailWith(http.MethodGet, "/api/categories", http.StatusInternalServerError)
	nav := navigator.New(gateway.NewClient(srv.URL), srv.URL)

	err := nav.Load(context.Background())
	require.Error(t, err)
	assert.True(t, gateway.IsNetworkError(err))
	assert.False(t, nav.Snapshot().Loaded)
	assert.Contains(t, nav.Snapshot().Error, srv.URL)
}
