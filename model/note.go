package model

const (
	MinNote = 0
	MaxNote = 5
)

// Note is a rating of UserID left by their counterpart on an accepted offer.
type Note struct {
	ID      string `json:"id"`
	UserID  string `json:"user"`
	OfferID string `json:"offer"`
	Text    string `json:"text"`
	Note    int    `json:"note"`
}
