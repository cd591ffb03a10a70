package usecase

import (
	"context"
	"errors"
	"strings"

	"swap-backend/model"
)

type NoteUsecase struct {
	repos Repositories
}

func NewNoteUsecase(repos Repositories) *NoteUsecase {
	return &NoteUsecase{repos: repos}
}

type NoteInput struct {
	OfferID *string `json:"offer"`
	Text    *string `json:"text"`
	Note    *int    `json:"note"`
}

// Create rates the caller's counterpart on an accepted offer. The rated user
// is always derived from the offer.
func (u *NoteUsecase) Create(ctx context.Context, callerID string, in NoteInput) (*model.Note, error) {
	if in.OfferID == nil || in.Note == nil {
		return nil, validationf("offer and note are required")
	}
	if err := checkNote(*in.Note); err != nil {
		return nil, err
	}

	offer, err := u.repos.Offers.GetByID(ctx, *in.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, validationf("offer %q does not exist", *in.OfferID)
	}
	if !offer.Accepted {
		return nil, validationf("you can't make a note if the offer has not been accepted")
	}
	given, received, err := u.parties(ctx, offer)
	if err != nil {
		return nil, err
	}

	var ratedID string
	switch {
	case given.OwnerID == callerID && received.OwnerID == callerID:
		return nil, validationf("you cannot note yourself")
	case given.OwnerID == callerID:
		ratedID = received.OwnerID
	case received.OwnerID == callerID:
		ratedID = given.OwnerID
	default:
		return nil, unauthorizedf("you are not linked to this offer")
	}

	exists, err := u.repos.Notes.ExistsForOfferUser(ctx, offer.ID, ratedID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateNote
	}

	note := &model.Note{ID: newID(), UserID: ratedID, OfferID: offer.ID, Note: *in.Note}
	if in.Text != nil {
		note.Text = strings.TrimSpace(*in.Text)
	}
	// the unique (offer, user) key catches a concurrent duplicate
	if err := u.repos.Notes.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *NoteUsecase) Get(ctx context.Context, id string) (*model.Note, error) {
	note, err := u.repos.Notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, notFoundf("note not found")
	}
	return note, nil
}

// Update changes the text and score of a note. Only its author, the offer
// party who is not the rated user, may do so.
func (u *NoteUsecase) Update(ctx context.Context, callerID, id string, in NoteInput) (*model.Note, error) {
	note, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Note != nil {
		if err := checkNote(*in.Note); err != nil {
			return nil, err
		}
	}
	offer, err := u.repos.Offers.GetByID(ctx, note.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, notFoundf("offer not found")
	}
	given, received, err := u.parties(ctx, offer)
	if err != nil {
		return nil, err
	}
	if callerID == note.UserID || (callerID != given.OwnerID && callerID != received.OwnerID) {
		return nil, unauthorizedf("you are not the author of this note")
	}

	if in.Text != nil {
		note.Text = strings.TrimSpace(*in.Text)
	}
	if in.Note != nil {
		note.Note = *in.Note
	}
	if err := u.repos.Notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Received returns the notes left about a user and their mean, nil when
// there are none.
func (u *NoteUsecase) Received(ctx context.Context, userID string) ([]model.Note, *float64, error) {
	notes, err := u.repos.Notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(notes) == 0 {
		return []model.Note{}, nil, nil
	}
	sum := 0
	for _, n := range notes {
		sum += n.Note
	}
	avg := float64(sum) / float64(len(notes))
	return notes, &avg, nil
}

func (u *NoteUsecase) parties(ctx context.Context, offer *model.Offer) (*model.Item, *model.Item, error) {
	items, err := u.repos.Items.GetByIDs(ctx, []string{offer.ItemGivenID, offer.ItemReceivedID})
	if err != nil {
		return nil, nil, err
	}
	given, received := items[offer.ItemGivenID], items[offer.ItemReceivedID]
	if given == nil || received == nil {
		return nil, nil, errors.New("offer references a missing item")
	}
	return given, received, nil
}

func checkNote(n int) error {
	if n < model.MinNote || n > model.MaxNote {
		return validationf("note must be between %d and %d", model.MinNote, model.MaxNote)
	}
	return nil
}
