package usecase

import (
	"context"
	"time"

	"swap-backend/model"
)

type OfferUsecase struct {
	repos Repositories
}

func NewOfferUsecase(repos Repositories) *OfferUsecase {
	return &OfferUsecase{repos: repos}
}

// OfferInput carries the writable offer fields. Nil means "not supplied".
type OfferInput struct {
	ItemGivenID    *string `json:"item_given"`
	ItemReceivedID *string `json:"item_received"`
	Comment        *string `json:"comment"`
	Accepted       *bool   `json:"accepted"`
	Answered       *bool   `json:"answered"`
}

// ValidateTrade checks that proposerID may give `given` for `received`:
// the proposer owns the given item, the counterpart owns the other one,
// and the two price ranges overlap.
func ValidateTrade(proposerID string, given, received *model.Item) error {
	if given.ID == received.ID {
		return validationf("an item cannot be traded against itself")
	}
	if given.OwnerID != proposerID {
		return validationf("you do not own the item you are giving")
	}
	if received.OwnerID == proposerID {
		return validationf("you cannot trade with yourself")
	}
	if given.PriceMin > received.PriceMax || received.PriceMin > given.PriceMax {
		return validationf("the price ranges of the two items are not compatible")
	}
	return nil
}

// Create proposes a trade. Whatever the input says, a new offer is neither
// accepted nor answered.
func (u *OfferUsecase) Create(ctx context.Context, callerID string, in OfferInput) (*model.Offer, error) {
	if in.ItemGivenID == nil || in.ItemReceivedID == nil {
		return nil, validationf("item_given and item_received are required")
	}
	given, received, err := u.loadPair(ctx, *in.ItemGivenID, *in.ItemReceivedID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTrade(callerID, given, received); err != nil {
		return nil, err
	}

	offer := &model.Offer{
		ID:             newID(),
		ItemGivenID:    given.ID,
		ItemReceivedID: received.ID,
		CreatedAt:      time.Now().UTC(),
	}
	if in.Comment != nil {
		offer.Comment = *in.Comment
	}
	if err := u.repos.Offers.Insert(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (u *OfferUsecase) Get(ctx context.Context, id string) (*model.Offer, error) {
	offer, err := u.repos.Offers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, notFoundf("offer not found")
	}
	return offer, nil
}

// Update edits an offer on behalf of either party. A full update (partial
// false) must name both items. Accepted and answered are independent flags;
// changing the items re-runs the trade checks against the original proposer.
func (u *OfferUsecase) Update(ctx context.Context, callerID, id string, in OfferInput, partial bool) (*model.Offer, error) {
	offer, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !partial && (in.ItemGivenID == nil || in.ItemReceivedID == nil) {
		return nil, validationf("item_given and item_received are required")
	}

	given, received, err := u.loadPair(ctx, offer.ItemGivenID, offer.ItemReceivedID)
	if err != nil {
		return nil, err
	}
	if callerID != given.OwnerID && callerID != received.OwnerID {
		return nil, unauthorizedf("you are not linked to this offer")
	}
	proposerID := given.OwnerID

	newGiven, newReceived := offer.ItemGivenID, offer.ItemReceivedID
	if in.ItemGivenID != nil {
		newGiven = *in.ItemGivenID
	}
	if in.ItemReceivedID != nil {
		newReceived = *in.ItemReceivedID
	}
	if newGiven != offer.ItemGivenID || newReceived != offer.ItemReceivedID {
		g, r, err := u.loadPair(ctx, newGiven, newReceived)
		if err != nil {
			return nil, err
		}
		if err := ValidateTrade(proposerID, g, r); err != nil {
			return nil, err
		}
	}

	offer.ItemGivenID, offer.ItemReceivedID = newGiven, newReceived
	if in.Comment != nil {
		offer.Comment = *in.Comment
	}
	if in.Accepted != nil {
		offer.Accepted = *in.Accepted
	}
	if in.Answered != nil {
		offer.Answered = *in.Answered
	}
	if err := u.repos.Offers.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (u *OfferUsecase) Delete(ctx context.Context, id string) error {
	found, err := u.repos.Offers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("offer not found")
	}
	return nil
}

// Pending lists the unanswered offers involving one of the user's items.
func (u *OfferUsecase) Pending(ctx context.Context, userID string) ([]model.Offer, error) {
	offers, err := u.repos.Offers.ListPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []model.Offer{}
	}
	return offers, nil
}

func (u *OfferUsecase) loadPair(ctx context.Context, givenID, receivedID string) (*model.Item, *model.Item, error) {
	items, err := u.repos.Items.GetByIDs(ctx, []string{givenID, receivedID})
	if err != nil {
		return nil, nil, err
	}
	given, received := items[givenID], items[receivedID]
	if given == nil {
		return nil, nil, validationf("item %q does not exist", givenID)
	}
	if received == nil {
		return nil, nil, validationf("item %q does not exist", receivedID)
	}
	return given, received, nil
}
