package usecase_test

import (
	"context"
	"net/url"
	"slices"
	"testing"

	"swap-backend/model"
	"swap-backend/usecase"
)

func TestSuggestions(t *testing.T) {
	s := newMarket(t)
	s.AddUser(model.User{ID: "u4", Username: "dave", Coordinates: &model.Coordinates{}})
	s.AddItem(model.Item{ID: "item6", Name: "Far away", PriceMin: 1, PriceMax: 2, CategoryID: "c1", OwnerID: "u4"})
	uc := usecase.NewItemUsecase(s.Repositories())

	got, err := uc.Search(context.Background(), "u3", url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"item4", "item5", "item1", "item2", "item3", "item6"}
	if !slices.Equal(ids(got), want) {
		t.Errorf("suggestions = %v, want %v", ids(got), want)
	}
}

func TestSuggestionsWeighInterests(t *testing.T) {
	s := newMarket(t)
	// 15 points per interested user: item3 (160 + 15) passes item1 and item2 (160)
	s.AddInterests("u1", "c3")
	uc := usecase.NewItemUsecase(s.Repositories())

	got, err := uc.Search(context.Background(), "u3", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"item4", "item5", "item3", "item1", "item2"}
	if !slices.Equal(ids(got), want) {
		t.Errorf("suggestions = %v, want %v", ids(got), want)
	}
}

func TestSuggestionsForAnonymous(t *testing.T) {
	s := newMarket(t)
	s.AddInterests("u1", "c2")
	s.AddInterests("u2", "c2", "c3")
	uc := usecase.NewItemUsecase(s.Repositories())

	got, err := uc.Search(context.Background(), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"item2", "item5", "item3", "item1", "item4"}
	if !slices.Equal(ids(got), want) {
		t.Errorf("suggestions = %v, want %v", ids(got), want)
	}
}

func TestSuggestionScore(t *testing.T) {
	listing := model.ItemListing{
		Item:             model.Item{ID: "x", CategoryID: "c1"},
		OwnerCoordinates: coords(stRoch),
	}
	counts := map[string]int{"c1": 2}

	if got := usecase.SuggestionScore(coords(maisonAilleurs), listing, counts); got != 20*10+15*2 {
		t.Errorf("score = %d, want %d", got, 20*10+15*2)
	}
	if got := usecase.SuggestionScore(nil, listing, counts); got != 30 {
		t.Errorf("score without requester coordinates = %d, want 30", got)
	}
	listing.OwnerCoordinates = nil
	if got := usecase.SuggestionScore(coords(maisonAilleurs), listing, nil); got != 0 {
		t.Errorf("score without owner coordinates = %d, want 0", got)
	}
}

func TestRankItemsSkipsOwnAndArchived(t *testing.T) {
	listings := []model.ItemListing{
		{Item: model.Item{ID: "a", OwnerID: "me"}},
		{Item: model.Item{ID: "b", OwnerID: "you", Archived: true}},
		{Item: model.Item{ID: "c", OwnerID: "you"}},
	}
	got := usecase.RankItems("me", nil, nil, listings)
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("ranked = %+v, want only c", got)
	}
}
