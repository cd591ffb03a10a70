package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"swap-backend/model"
)

const (
	maxItemNameLen        = 50
	maxItemDescriptionLen = 2000
)

type ItemUsecase struct {
	repos Repositories
}

func NewItemUsecase(repos Repositories) *ItemUsecase {
	return &ItemUsecase{repos: repos}
}

// ItemInput carries the writable item fields. Nil means "not supplied".
type ItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceMin    *int    `json:"price_min"`
	PriceMax    *int    `json:"price_max"`
	CategoryID  *string `json:"category"`
	Archived    *bool   `json:"archived"`
}

// Search lists items for a requester (empty when anonymous). Without any
// query parameter it returns ranked suggestions, otherwise the filtered search.
func (u *ItemUsecase) Search(ctx context.Context, requesterID string, values url.Values) ([]model.ItemView, error) {
	var query SearchQuery
	suggest := len(values) == 0
	if !suggest {
		var err error
		if query, err = ParseSearchQuery(values); err != nil {
			return nil, err
		}
	}

	var coords *model.Coordinates
	if requesterID != "" {
		var err error
		if coords, err = u.repos.Users.GetCoordinates(ctx, requesterID); err != nil {
			return nil, fmt.Errorf("load requester coordinates: %w", err)
		}
	}

	listings, err := u.repos.Items.ListActive(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	var items []model.Item
	if suggest {
		counts, err := u.repos.Interests.CountByCategory(ctx)
		if err != nil {
			return nil, fmt.Errorf("count interests: %w", err)
		}
		for _, r := range RankItems(requesterID, coords, counts, listings) {
			items = append(items, r.Item)
		}
	} else {
		filtered, err := FilterItems(query, requesterID, coords, listings)
		if err != nil {
			return nil, err
		}
		for _, l := range filtered {
			items = append(items, l.Item)
		}
	}
	return u.aggregate(ctx, items)
}

// GetItem is the item detail read. Every call counts as a view, and
// authenticated reads are also logged as consultations.
func (u *ItemUsecase) GetItem(ctx context.Context, requesterID, id string) (*model.ItemView, error) {
	found, err := u.repos.Items.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	if !found {
		return nil, notFoundf("item not found")
	}

	if requesterID != "" {
		c := &model.Consultation{ID: newID(), UserID: requesterID, ItemID: id, CreatedAt: time.Now().UTC()}
		if err := u.repos.Consultations.Insert(ctx, c); err != nil {
			return nil, fmt.Errorf("record consultation: %w", err)
		}
	}

	item, err := u.repos.Items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item not found")
	}
	views, err := u.aggregate(ctx, []model.Item{*item})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (u *ItemUsecase) CreateItem(ctx context.Context, ownerID string, in ItemInput) (*model.Item, error) {
	item := &model.Item{
		ID:        newID(),
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if in.Name == nil || in.CategoryID == nil {
		return nil, validationf("name and category are required")
	}
	applyItemInput(item, in)
	if err := u.validateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := u.repos.Items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces (partial=false) or patches the owner's item.
func (u *ItemUsecase) UpdateItem(ctx context.Context, userID, id string, in ItemInput, partial bool) (*model.Item, error) {
	item, err := u.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !partial && (in.Name == nil || in.Description == nil || in.PriceMin == nil || in.PriceMax == nil || in.CategoryID == nil) {
		return nil, validationf("name, description, price_min, price_max and category are required")
	}

	applyItemInput(item, in)
	if err := u.validateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := u.repos.Items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes the owner's item; images, likes and offers go with it.
func (u *ItemUsecase) DeleteItem(ctx context.Context, userID, id string) error {
	if _, err := u.ownedItem(ctx, userID, id); err != nil {
		return err
	}
	found, err := u.repos.Items.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("item not found")
	}
	return nil
}

func (u *ItemUsecase) ownedItem(ctx context.Context, userID, id string) (*model.Item, error) {
	item, err := u.repos.Items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item not found")
	}
	if item.OwnerID != userID {
		return nil, unauthorizedf("you do not own this item")
	}
	return item, nil
}

func applyItemInput(item *model.Item, in ItemInput) {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.PriceMin != nil {
		item.PriceMin = *in.PriceMin
	}
	if in.PriceMax != nil {
		item.PriceMax = *in.PriceMax
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Archived != nil {
		item.Archived = *in.Archived
	}
}

func (u *ItemUsecase) validateItem(ctx context.Context, item *model.Item) error {
	if item.Name == "" {
		return validationf("name may not be blank")
	}
	if len(item.Name) > maxItemNameLen {
		return validationf("name has more than %d characters", maxItemNameLen)
	}
	if len(item.Description) > maxItemDescriptionLen {
		return validationf("description has more than %d characters", maxItemDescriptionLen)
	}
	if err := checkPrices(item.PriceMin, item.PriceMax); err != nil {
		return err
	}
	category, err := u.repos.Categories.GetByID(ctx, item.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return validationf("category %q does not exist", item.CategoryID)
	}
	return nil
}

func checkPrices(priceMin, priceMax int) error {
	if priceMin < 0 {
		return validationf("price min is negative")
	}
	if priceMax < 0 {
		return validationf("price max is negative")
	}
	if priceMin > priceMax {
		return validationf("price min is higher than price max")
	}
	return nil
}

// aggregate joins category names, images and likes onto items, keeping order.
func (u *ItemUsecase) aggregate(ctx context.Context, items []model.Item) ([]model.ItemView, error) {
	views := make([]model.ItemView, 0, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	categories, err := u.repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	images, err := u.repos.Images.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	likes, err := u.repos.Likes.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		v := model.ItemView{
			Item:         it,
			CategoryName: names[it.CategoryID],
			ImageSet:     images[it.ID],
			LikeSet:      likes[it.ID],
		}
		if v.ImageSet == nil {
			v.ImageSet = []model.Image{}
		}
		if v.LikeSet == nil {
			v.LikeSet = []model.Like{}
		}
		views = append(views, v)
	}
	return views, nil
}
