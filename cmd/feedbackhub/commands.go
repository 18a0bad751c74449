package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/feedbackhub/internal/gateway"
	"github.com/muurk/feedbackhub/internal/navigator"
	"github.com/muurk/feedbackhub/internal/tui"
	"github.com/muurk/feedbackhub/internal/ui"
)

// browseCmd launches the interactive browser
func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive browser",
		Long: `Launch the interactive browser.

Categories are listed first. Open one to see its items, open an item to
read its reviews and average rating, and leave your own review from the
same screen. New categories can be added from the category list.`,
		Example: `  # Launch against the default backend
  feedbackhub browse
  # Or simply (browse is default):
  feedbackhub

  # Launch against another backend
  feedbackhub --api-url http://192.168.1.20:8081`,
		Args: cobra.NoArgs,
		RunE: a.runBrowse,
	}
}

func (a *app) runBrowse(cmd *cobra.Command, args []string) error {
	nav := navigator.New(a.client(), a.cfg.APIURL)
	if err := tui.Run(cmd.Context(), nav); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

// categoriesCmd lists every category
func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Example: `  feedbackhub categories
  feedbackhub categories --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.client().FetchCategories(cmd.Context())
			if err != nil {
				return a.fail(cmd, "Could not list categories", err)
			}

			w := cmd.OutOrStdout()
			switch a.format {
			case formatJSON:
				return printJSON(w, categories)
			case formatCompact:
				fmt.Fprint(w, gateway.FormatCategoriesCompact(categories))
			default:
				fmt.Fprint(w, gateway.FormatCategoriesDetailed(categories))
			}
			return nil
		},
	}
}

// itemsCmd lists items, optionally for one category
func (a *app) itemsCmd() *cobra.Command {
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List items",
		Long: `List reviewable items.

With --category, only items whose category has that id are listed. Items
without a category never match a filter.`,
		Example: `  # All items
  feedbackhub items

  # Items in category 2
  feedbackhub items --category 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := a.client()
			filtered := cmd.Flags().Changed("category")

			var (
				items      []gateway.Item
				categories []gateway.Category
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				items, err = client.FetchItems(gctx)
				return err
			})
			if filtered && a.format == formatDetailed {
				g.Go(func() error {
					var err error
					categories, err = client.FetchCategories(gctx)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return a.fail(cmd, "Could not list items", err)
			}

			title := "All"
			if filtered {
				items = navigator.FilterItems(items, categoryID)
				title = fmt.Sprintf("Category %d", categoryID)
				for _, c := range categories {
					if c.ID == categoryID {
						title = c.Name
						break
					}
				}
			}
			if items == nil {
				items = []gateway.Item{}
			}

			w := cmd.OutOrStdout()
			switch a.format {
			case formatJSON:
				return printJSON(w, items)
			case formatCompact:
				fmt.Fprint(w, gateway.FormatItemsCompact(items))
			default:
				fmt.Fprint(w, gateway.FormatItemsDetailed(title, items))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Only list items in this category id")
	return cmd
}

func parseItemID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", s)
	}
	return id, nil
}

// feedbackReport is the JSON shape printed by the feedback command
type feedbackReport struct {
	ItemID   int64              `json:"itemId"`
	Item     string             `json:"item,omitempty"`
	Reviews  int                `json:"reviews"`
	Average  float64            `json:"average"`
	Feedback []gateway.Feedback `json:"feedback"`
}

// feedbackCmd shows the reviews for one item
func (a *app) feedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <item-id>",
		Short: "Show the reviews and average rating of an item",
		Example: `  feedbackhub feedback 201
  feedbackhub feedback 201 --format compact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client := a.client()

			var (
				items    []gateway.Item
				feedback []gateway.Feedback
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				items, err = client.FetchItems(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				feedback, err = client.FetchFeedback(gctx, itemID)
				return err
			})
			if err := g.Wait(); err != nil {
				return a.fail(cmd, "Could not load feedback", err)
			}

			name := itemName(items, itemID)
			w := cmd.OutOrStdout()
			switch a.format {
			case formatJSON:
				return printJSON(w, newFeedbackReport(itemID, name, feedback))
			case formatCompact:
				fmt.Fprint(w, gateway.FormatFeedbackCompact(feedback))
			default:
				fmt.Fprint(w, gateway.FormatFeedbackDetailed(name, feedback))
			}
			return nil
		},
	}
}

func newFeedbackReport(itemID int64, name string, feedback []gateway.Feedback) feedbackReport {
	if feedback == nil {
		feedback = []gateway.Feedback{}
	}
	stats := gateway.Stats(feedback)
	return feedbackReport{
		ItemID:   itemID,
		Item:     name,
		Reviews:  stats.Count,
		Average:  stats.Average,
		Feedback: feedback,
	}
}

func itemName(items []gateway.Item, id int64) string {
	for _, item := range items {
		if item.ID == id {
			return item.Name
		}
	}
	return fmt.Sprintf("Item #%d", id)
}

// submitCmd posts a review and prints the refreshed statistics
func (a *app) submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <item-id> <rating> <comment...>",
		Short: "Leave a review for an item",
		Long: `Leave a review for an item.

The rating must be between 1 and 10 and the comment at least five
characters long. Both are checked before anything is sent. After the
review is stored the item's reviews are read back, so the printed
average includes it.`,
		Example: `  feedbackhub submit 201 8 Great keyboard, decent battery`,
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return a.fail(cmd, "Invalid review", gateway.NewValidationError(gateway.MsgRatingOutOfRange))
			}
			in := gateway.FeedbackInput{
				Rating:  rating,
				Comment: strings.Join(args[2:], " "),
				ItemID:  itemID,
			}
			if err := gateway.ValidateFeedbackInput(in); err != nil {
				return a.fail(cmd, "Invalid review", err)
			}

			a.header(cmd, "Submit Feedback")

			created, feedback, err := gateway.SubmitFeedback(cmd.Context(), a.client(), in)
			if err != nil {
				return a.fail(cmd, navigator.MsgSubmitFailed, err)
			}

			if a.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), created)
			}

			stats := gateway.Stats(feedback)
			a.success(cmd, "Feedback submitted",
				ui.Detail{Key: "Item", Value: strconv.FormatInt(itemID, 10)},
				ui.Detail{Key: "Review", Value: created.Line()},
				ui.Detail{Key: "Reviews", Value: strconv.Itoa(stats.Count)},
				ui.Detail{Key: "Average", Value: stats.FormatAverage() + " " + gateway.RatingScale},
			)
			return nil
		},
	}
}

// addCategoryCmd creates a category
func (a *app) addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add-category <name...>",
		Short:   "Create a category",
		Example: `  feedbackhub add-category Books`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := gateway.ValidateCategoryName(name); err != nil {
				return a.fail(cmd, "Invalid category", err)
			}

			a.header(cmd, "Add Category")

			created, err := a.client().CreateCategory(cmd.Context(), gateway.CategoryInput{Name: name})
			if err != nil {
				return a.fail(cmd, "Could not create category", err)
			}

			if a.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), created)
			}

			a.success(cmd, fmt.Sprintf(navigator.MsgCategoryCreated, created.Name, created.ID))
			return nil
		},
	}
}

// pingCmd checks that the backend answers
func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := a.client().Ping(cmd.Context()); err != nil {
				return a.fail(cmd, "Backend unreachable", err)
			}
			latency := time.Since(start).Round(time.Millisecond)

			if a.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"url":       a.cfg.APIURL,
					"reachable": true,
					"latencyMs": latency.Milliseconds(),
				})
			}

			a.success(cmd, "Backend reachable",
				ui.Detail{Key: "API", Value: a.cfg.APIURL},
				ui.Detail{Key: "Latency", Value: latency.String()},
			)
			return nil
		},
	}
}
