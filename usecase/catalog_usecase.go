package usecase

import (
	"context"
	"strings"
	"time"

	"swap-backend/model"
)

// CatalogUsecase serves the read-only categories and the item likes and images.
type CatalogUsecase struct {
	repos Repositories
}

func NewCatalogUsecase(repos Repositories) *CatalogUsecase {
	return &CatalogUsecase{repos: repos}
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (u *CatalogUsecase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	c, err := u.repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFoundf("category not found")
	}
	return c, nil
}

// Like records that userID likes itemID. Repeated likes are kept as is.
func (u *CatalogUsecase) Like(ctx context.Context, userID, itemID string) (*model.Like, error) {
	item, err := u.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, validationf("item %q does not exist", itemID)
	}
	like := &model.Like{ID: newID(), ItemID: itemID, UserID: userID, CreatedAt: time.Now().UTC()}
	if err := u.repos.Likes.Insert(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

func (u *CatalogUsecase) ListLikes(ctx context.Context) ([]model.Like, error) {
	likes, err := u.repos.Likes.List(ctx)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []model.Like{}
	}
	return likes, nil
}

func (u *CatalogUsecase) GetLike(ctx context.Context, id string) (*model.Like, error) {
	like, err := u.repos.Likes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, notFoundf("like not found")
	}
	return like, nil
}

// Unlike deletes a like; only the user who left it may do so.
func (u *CatalogUsecase) Unlike(ctx context.Context, userID, id string) error {
	like, err := u.GetLike(ctx, id)
	if err != nil {
		return err
	}
	if like.UserID != userID {
		return unauthorizedf("this like is not yours")
	}
	if _, err := u.repos.Likes.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// AddImage attaches an already stored image URL to the owner's item.
func (u *CatalogUsecase) AddImage(ctx context.Context, userID, itemID, imageURL string) (*model.Image, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, validationf("image is required")
	}
	item, err := u.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, validationf("item %q does not exist", itemID)
	}
	if item.OwnerID != userID {
		return nil, unauthorizedf("you do not own this item")
	}
	img := &model.Image{ID: newID(), ItemID: itemID, URL: imageURL}
	if err := u.repos.Images.Insert(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (u *CatalogUsecase) RemoveImage(ctx context.Context, userID, id string) error {
	img, err := u.repos.Images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return notFoundf("image not found")
	}
	item, err := u.repos.Items.GetByID(ctx, img.ItemID)
	if err != nil {
		return err
	}
	if item == nil || item.OwnerID != userID {
		return unauthorizedf("you do not own this item")
	}
	if _, err := u.repos.Images.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
