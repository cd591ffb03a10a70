package usecase_test

import (
	"context"
	"errors"
	"testing"

	"swap-backend/model"
	"swap-backend/usecase"
	"swap-backend/usecase/usecasetest"
)

func TestCreateOffer(t *testing.T) {
	s := newMarket(t)
	uc := usecase.NewOfferUsecase(s.Repositories())

	offer, err := uc.Create(context.Background(), "u1", usecase.OfferInput{
		ItemGivenID:    ptr("item1"),
		ItemReceivedID: ptr("item4"),
		Comment:        ptr("shoes for your mouse?"),
		Accepted:       ptr(true),
		Answered:       ptr(true),
	})
	if err != nil {
		t.Fatal(err)
	}
	if offer.State() != model.OfferProposed {
		t.Errorf("new offer state = %s, want proposed", offer.State())
	}
	if s.OfferCount() != 1 {
		t.Errorf("offers stored = %d, want 1", s.OfferCount())
	}
}

func TestCreateOfferRejected(t *testing.T) {
	cases := []struct {
		name     string
		caller   string
		given    string
		received string
		msg      string
	}{
		{"same item", "u1", "item1", "item1", "an item cannot be traded against itself"},
		{"not the owner", "u3", "item1", "item4", "you do not own the item you are giving"},
		{"own items", "u1", "item1", "item2", "you cannot trade with yourself"},
		{"incompatible prices", "u1", "item1", "item5", "the price ranges of the two items are not compatible"},
		{"missing item", "u1", "item1", "nope", `item "nope" does not exist`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newMarket(t)
			uc := usecase.NewOfferUsecase(s.Repositories())
			_, err := uc.Create(context.Background(), c.caller, usecase.OfferInput{
				ItemGivenID:    ptr(c.given),
				ItemReceivedID: ptr(c.received),
			})
			if !errors.Is(err, usecase.ErrValidation) {
				t.Fatalf("err = %v, want a validation error", err)
			}
			if err.Error() != c.msg {
				t.Errorf("message = %q, want %q", err.Error(), c.msg)
			}
			if s.OfferCount() != 0 {
				t.Errorf("offers stored = %d, want 0", s.OfferCount())
			}
		})
	}
}

func TestValidateTradeBoundaries(t *testing.T) {
	given := &model.Item{ID: "a", OwnerID: "p", PriceMin: 10, PriceMax: 20}
	received := &model.Item{ID: "b", OwnerID: "q", PriceMin: 20, PriceMax: 40}
	if err := usecase.ValidateTrade("p", given, received); err != nil {
		t.Errorf("touching ranges rejected: %v", err)
	}
	received.PriceMin = 21
	if err := usecase.ValidateTrade("p", given, received); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("disjoint ranges accepted: %v", err)
	}
}

func proposed(t *testing.T, s *usecasetest.Store) string {
	t.Helper()
	s.AddOffer(model.Offer{ID: "o1", ItemGivenID: "item1", ItemReceivedID: "item4"})
	return "o1"
}

func TestUpdateOffer(t *testing.T) {
	s := newMarket(t)
	uc := usecase.NewOfferUsecase(s.Repositories())
	ctx := context.Background()
	id := proposed(t, s)

	if _, err := uc.Update(ctx, "u3", id, usecase.OfferInput{Accepted: ptr(true)}, true); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("stranger update: err = %v, want unauthorized", err)
	}
	if _, err := uc.Update(ctx, "u2", id, usecase.OfferInput{Accepted: ptr(true)}, false); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("full update without items: err = %v, want a validation error", err)
	}
	if _, err := uc.Update(ctx, "u2", id, usecase.OfferInput{ItemReceivedID: ptr("item5")}, true); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("switch to incompatible item: err = %v, want a validation error", err)
	}

	got, err := uc.Update(ctx, "u2", id, usecase.OfferInput{Answered: ptr(true), Accepted: ptr(true)}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.State() != model.OfferAccepted {
		t.Errorf("state = %s, want accepted", got.State())
	}

	got, err = uc.Update(ctx, "u1", id, usecase.OfferInput{Accepted: ptr(false)}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got.State() != model.OfferRejected {
		t.Errorf("state = %s, want rejected", got.State())
	}
}

func TestDeleteOffer(t *testing.T) {
	s := newMarket(t)
	uc := usecase.NewOfferUsecase(s.Repositories())
	id := proposed(t, s)

	if err := uc.Delete(context.Background(), id); err != nil {
		t.Fatal(err)
	}
	if err := uc.Delete(context.Background(), id); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}
}

func TestPendingOffers(t *testing.T) {
	s := newMarket(t)
	uc := usecase.NewOfferUsecase(s.Repositories())
	proposed(t, s)
	s.AddOffer(model.Offer{ID: "o2", ItemGivenID: "item2", ItemReceivedID: "item4", Answered: true})

	for user, want := range map[string]int{"u1": 1, "u2": 1, "u3": 0} {
		got, err := uc.Pending(context.Background(), user)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != want {
			t.Errorf("pending for %s = %d, want %d", user, len(got), want)
		}
	}
}

func TestOfferState(t *testing.T) {
	cases := []struct {
		accepted, answered bool
		want               model.OfferState
	}{
		{false, false, model.OfferProposed},
		{true, false, model.OfferAccepted},
		{true, true, model.OfferAccepted},
		{false, true, model.OfferRejected},
	}
	for _, c := range cases {
		o := model.Offer{Accepted: c.accepted, Answered: c.answered}
		if got := o.State(); got != c.want {
			t.Errorf("State(accepted=%t, answered=%t) = %s, want %s", c.accepted, c.answered, got, c.want)
		}
	}
}
