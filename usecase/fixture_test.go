package usecase_test

import (
	"testing"
	"time"

	"swap-backend/model"
	"swap-backend/usecase/usecasetest"
)

var (
	cheseaux       = model.Coordinates{Latitude: 46.7793801, Longitude: 6.659497600000001}
	stRoch         = model.Coordinates{Latitude: 46.7812274, Longitude: 6.6473097}
	maisonAilleurs = model.Coordinates{Latitude: 46.77866239999999, Longitude: 6.6419655}
)

func coords(c model.Coordinates) *model.Coordinates { return &c }

// newMarket seeds three users around Yverdon-les-Bains and five items:
// u1 (Cheseaux) owns item1..item3, u2 (St-Roch) owns item4 and item5 and
// u3 (Maison d'ailleurs) owns nothing.
func newMarket(t *testing.T) *usecasetest.Store {
	t.Helper()
	s := usecasetest.NewStore()
	s.AddUser(model.User{ID: "u1", Username: "alice", Coordinates: coords(cheseaux)})
	s.AddUser(model.User{ID: "u2", Username: "bob", Coordinates: coords(stRoch)})
	s.AddUser(model.User{ID: "u3", Username: "carol", Coordinates: coords(maisonAilleurs)})

	s.AddCategory("c1", "Test")
	s.AddCategory("c2", "Test2")
	s.AddCategory("c3", "Test3")

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []model.Item{
		{ID: "item1", Name: "Shoes", Description: "My old shoes", PriceMin: 10, PriceMax: 30, CategoryID: "c1", OwnerID: "u1"},
		{ID: "item2", Name: "Shirt", Description: "My favourite shirt", PriceMin: 5, PriceMax: 30, CategoryID: "c2", OwnerID: "u1"},
		{ID: "item3", Name: "Ring", Description: "My grandmother's ring", PriceMin: 100, PriceMax: 500, CategoryID: "c3", OwnerID: "u1"},
		{ID: "item4", Name: "New mouse", Description: "A wireless mouse", PriceMin: 20, PriceMax: 100, CategoryID: "c1", OwnerID: "u2"},
		{ID: "item5", Name: "Piano", Description: "An upright piano", PriceMin: 500, PriceMax: 1000, CategoryID: "c2", OwnerID: "u2"},
	}
	for i, it := range items {
		it.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		s.AddItem(it)
	}
	return s
}

func ids(views []model.ItemView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func names(views []model.ItemView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func ptr[T any](v T) *T { return &v }
