package usecase_test

import (
	"context"
	"errors"
	"testing"

	"swap-backend/usecase"
)

func TestLikes(t *testing.T) {
	s := newMarket(t)
	catalog := usecase.NewCatalogUsecase(s.Repositories())
	items := usecase.NewItemUsecase(s.Repositories())
	ctx := context.Background()

	like, err := catalog.Like(ctx, "u3", "item4")
	if err != nil {
		t.Fatal(err)
	}
	v, err := items.GetItem(ctx, "", "item4")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.LikeSet) != 1 || v.LikeSet[0].UserID != "u3" {
		t.Errorf("like_set = %+v", v.LikeSet)
	}

	if _, err := catalog.Like(ctx, "u3", "nope"); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("like missing item: err = %v, want a validation error", err)
	}
	if err := catalog.Unlike(ctx, "u1", like.ID); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("unlike by another user: err = %v, want unauthorized", err)
	}
	if err := catalog.Unlike(ctx, "u3", like.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.GetLike(ctx, like.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("deleted like: err = %v, want not found", err)
	}
}

func TestImages(t *testing.T) {
	s := newMarket(t)
	catalog := usecase.NewCatalogUsecase(s.Repositories())
	items := usecase.NewItemUsecase(s.Repositories())
	ctx := context.Background()

	if _, err := catalog.AddImage(ctx, "u2", "item1", "https://cdn.example.com/a.png"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("image on another user's item: err = %v, want unauthorized", err)
	}
	img, err := catalog.AddImage(ctx, "u1", "item1", "https://cdn.example.com/a.png")
	if err != nil {
		t.Fatal(err)
	}
	v, err := items.GetItem(ctx, "", "item1")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.ImageSet) != 1 || v.ImageSet[0].URL != img.URL {
		t.Errorf("image_set = %+v", v.ImageSet)
	}

	if err := catalog.RemoveImage(ctx, "u2", img.ID); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("remove by another user: err = %v, want unauthorized", err)
	}
	if err := catalog.RemoveImage(ctx, "u1", img.ID); err != nil {
		t.Fatal(err)
	}
	if err := catalog.RemoveImage(ctx, "u1", img.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("second remove: err = %v, want not found", err)
	}
}

func TestCategories(t *testing.T) {
	catalog := usecase.NewCatalogUsecase(newMarket(t).Repositories())
	ctx := context.Background()

	all, err := catalog.ListCategories(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("categories = %v", all)
	}
	if _, err := catalog.GetCategory(ctx, "zz"); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("unknown category: err = %v, want not found", err)
	}
}
