package usecase_test

import (
	"context"
	"errors"
	"testing"

	"swap-backend/usecase"
)

func TestMessages(t *testing.T) {
	uc := usecase.NewMessageUsecase(newMarket(t).Repositories())
	ctx := context.Background()

	first, err := uc.Send(ctx, "u1", "u2", "is the piano still there?")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Send(ctx, "u2", "u1", "yes"); err != nil {
		t.Fatal(err)
	}

	inbox, err := uc.Inbox(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(inbox) != 2 || inbox[0].Text != "yes" {
		t.Errorf("inbox = %+v", inbox)
	}
	if got, err := uc.Inbox(ctx, "u3"); err != nil || len(got) != 0 || got == nil {
		t.Errorf("empty inbox = %v, %v", got, err)
	}

	if _, err := uc.Get(ctx, "u3", first.ID); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("stranger read: err = %v, want unauthorized", err)
	}
	if _, err := uc.Get(ctx, "u2", first.ID); err != nil {
		t.Errorf("recipient read: %v", err)
	}
}

func TestSendRejected(t *testing.T) {
	uc := usecase.NewMessageUsecase(newMarket(t).Repositories())
	ctx := context.Background()

	for _, c := range []struct{ to, text string }{
		{"u2", "  "},
		{"u1", "hello me"},
		{"nobody", "hello"},
	} {
		if _, err := uc.Send(ctx, "u1", c.to, c.text); !errors.Is(err, usecase.ErrValidation) {
			t.Errorf("Send(u1 -> %s, %q) err = %v, want a validation error", c.to, c.text, err)
		}
	}
}

func TestComments(t *testing.T) {
	uc := usecase.NewMessageUsecase(newMarket(t).Repositories())
	ctx := context.Background()

	for _, text := range []string{"first", "second"} {
		if _, err := uc.Comment(ctx, "u3", "item1", text); err != nil {
			t.Fatal(err)
		}
	}
	got, err := uc.Comments(ctx, "item1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Content != "first" {
		t.Errorf("comments = %+v", got)
	}

	if _, err := uc.Comment(ctx, "u3", "nope", "hi"); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("comment on missing item: err = %v, want not found", err)
	}
	if _, err := uc.Comment(ctx, "u3", "item1", ""); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("blank comment: err = %v, want a validation error", err)
	}
}
