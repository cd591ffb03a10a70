package usecase_test

import (
	"context"
	"errors"
	"testing"

	"swap-backend/model"
	"swap-backend/usecase"
	"swap-backend/usecase/usecasetest"
)

// acceptedOffer stores o1, u1 giving item1 for u2's item4.
func acceptedOffer(t *testing.T, accepted bool) (*usecasetest.Store, *usecase.NoteUsecase) {
	t.Helper()
	s := newMarket(t)
	s.AddOffer(model.Offer{ID: "o1", ItemGivenID: "item1", ItemReceivedID: "item4", Accepted: accepted, Answered: accepted})
	return s, usecase.NewNoteUsecase(s.Repositories())
}

func TestCreateNote(t *testing.T) {
	s, uc := acceptedOffer(t, true)
	ctx := context.Background()

	note, err := uc.Create(ctx, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(4), Text: ptr("nice mouse")})
	if err != nil {
		t.Fatal(err)
	}
	if note.UserID != "u2" {
		t.Errorf("rated user = %s, want u2", note.UserID)
	}

	_, err = uc.Create(ctx, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(1)})
	if !errors.Is(err, usecase.ErrDuplicateNote) || !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("second note: err = %v, want the duplicate note error", err)
	}

	if _, err := uc.Create(ctx, "u2", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(5)}); err != nil {
		t.Errorf("counterpart note: %v", err)
	}
	if s.NoteCount() != 2 {
		t.Errorf("notes stored = %d, want 2", s.NoteCount())
	}
}

func TestCreateNoteRejected(t *testing.T) {
	cases := []struct {
		name     string
		accepted bool
		caller   string
		in       usecase.NoteInput
		kind     error
	}{
		{"offer not accepted", false, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(3)}, usecase.ErrValidation},
		{"note too high", true, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(6)}, usecase.ErrValidation},
		{"note negative", true, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(-1)}, usecase.ErrValidation},
		{"missing note", true, "u1", usecase.NoteInput{OfferID: ptr("o1")}, usecase.ErrValidation},
		{"unknown offer", true, "u1", usecase.NoteInput{OfferID: ptr("o9"), Note: ptr(3)}, usecase.ErrValidation},
		{"stranger", true, "u3", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(3)}, usecase.ErrUnauthorized},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, uc := acceptedOffer(t, c.accepted)
			_, err := uc.Create(context.Background(), c.caller, c.in)
			if !errors.Is(err, c.kind) {
				t.Fatalf("err = %v, want %v", err, c.kind)
			}
			if s.NoteCount() != 0 {
				t.Errorf("notes stored = %d, want 0", s.NoteCount())
			}
		})
	}
}

func TestCreateNoteBoundaries(t *testing.T) {
	for _, n := range []int{model.MinNote, model.MaxNote} {
		_, uc := acceptedOffer(t, true)
		if _, err := uc.Create(context.Background(), "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(n)}); err != nil {
			t.Errorf("note %d rejected: %v", n, err)
		}
	}
}

func TestUpdateNote(t *testing.T) {
	_, uc := acceptedOffer(t, true)
	ctx := context.Background()
	note, err := uc.Create(ctx, "u1", usecase.NoteInput{OfferID: ptr("o1"), Note: ptr(2)})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Update(ctx, "u2", note.ID, usecase.NoteInput{Note: ptr(5)}); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("rated user update: err = %v, want unauthorized", err)
	}
	if _, err := uc.Update(ctx, "u3", note.ID, usecase.NoteInput{Note: ptr(5)}); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("stranger update: err = %v, want unauthorized", err)
	}
	got, err := uc.Update(ctx, "u1", note.ID, usecase.NoteInput{Note: ptr(3), Text: ptr("fine")})
	if err != nil {
		t.Fatal(err)
	}
	if got.Note != 3 || got.Text != "fine" || got.UserID != "u2" {
		t.Errorf("updated note = %+v", got)
	}
}

func TestReceivedNotes(t *testing.T) {
	s, uc := acceptedOffer(t, true)
	ctx := context.Background()

	_, avg, err := uc.Received(ctx, "u2")
	if err != nil {
		t.Fatal(err)
	}
	if avg != nil {
		t.Errorf("average without notes = %v, want nil", *avg)
	}

	s.AddNote(model.Note{ID: "n1", UserID: "u2", OfferID: "o1", Note: 4})
	s.AddNote(model.Note{ID: "n2", UserID: "u2", OfferID: "o2", Note: 1})
	notes, avg, err := uc.Received(ctx, "u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 2 || avg == nil || *avg != 2.5 {
		t.Errorf("received = %v, avg = %v", notes, avg)
	}
}
