package model

import "time"

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceMin    int       `json:"price_min"`
	PriceMax    int       `json:"price_max"`
	CategoryID  string    `json:"category"`
	OwnerID     string    `json:"owner"`
	CreatedAt   time.Time `json:"creation_date"`
	Views       int       `json:"views"`
	Archived    bool      `json:"archived"`
}

// ItemListing is an item joined with what search and ranking need to know
// about its category and its owner.
type ItemListing struct {
	Item
	CategoryName     string
	OwnerCoordinates *Coordinates
}

// ItemView is the aggregated representation returned by item reads.
type ItemView struct {
	Item
	CategoryName string  `json:"category_name"`
	ImageSet     []Image `json:"image_set"`
	LikeSet      []Like  `json:"like_set"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Image struct {
	ID     string `json:"id"`
	ItemID string `json:"item"`
	URL    string `json:"image"`
}

type Like struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"date"`
}
