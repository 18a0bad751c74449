package apitest

import "github.com/muurk/feedbackhub/internal/gateway"

// Category ids used by the default fixtures.
const (
	FoodID        int64 = 1
	ElectronicsID int64 = 2
	HotelsID      int64 = 3
	PlacesID      int64 = 4
)

// Item ids used by the default fixtures.
const (
	PizzaID  int64 = 101
	BurgerID int64 = 102
	LaptopID int64 = 201
	MouseID  int64 = 202
	GrandID  int64 = 301
	ParkID   int64 = 401
)

// DefaultCategories returns the seed categories.
func DefaultCategories() []gateway.Category {
	return []gateway.Category{
		{ID: FoodID, Name: "Food"},
		{ID: ElectronicsID, Name: "Electronics"},
		{ID: HotelsID, Name: "Hotels"},
		{ID: PlacesID, Name: "Places"},
	}
}

// DefaultItems returns the seed items. Hotels has one item, Places has one,
// and the last item has no category.
func DefaultItems() []gateway.Item {
	cats := DefaultCategories()
	return []gateway.Item{
		{ID: PizzaID, Name: "Gourmet Pizza Place", Category: &cats[0]},
		{ID: LaptopID, Name: "Laptop Pro X", Category: &cats[1]},
		{ID: BurgerID, Name: "Downtown Burger Joint", Category: &cats[0]},
		{ID: MouseID, Name: "Wireless Mouse Elite", Category: &cats[1]},
		{ID: GrandID, Name: "The Grand Vista Hotel", Category: &cats[2]},
		{ID: ParkID, Name: "Central City Park", Category: &cats[3]},
		{ID: 999, Name: "Unfiled Thing"},
	}
}

// DefaultFeedback returns the seed feedback. The laptop averages 4.5.
func DefaultFeedback() []gateway.Feedback {
	return []gateway.Feedback{
		{ID: 1, Rating: 5, Comment: "Absolutely love this laptop! The performance is top-notch.", Item: gateway.ItemRef{ID: LaptopID}},
		{ID: 2, Rating: 4, Comment: "Great burgers, but the service was a bit slow on a Friday night.", Item: gateway.ItemRef{ID: BurgerID}},
		{ID: 3, Rating: 9, Comment: "Such a luxurious stay. The views were breathtaking.", Item: gateway.ItemRef{ID: GrandID}},
		{ID: 4, Rating: 4, Comment: "Solid laptop for work. Battery life is decent.", Item: gateway.ItemRef{ID: LaptopID}},
	}
}
