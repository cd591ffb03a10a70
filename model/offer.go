package model

import "time"

type OfferState string

const (
	OfferProposed OfferState = "proposed"
	OfferAccepted OfferState = "accepted"
	OfferRejected OfferState = "rejected"
)

type Offer struct {
	ID             string    `json:"id"`
	ItemGivenID    string    `json:"item_given"`
	ItemReceivedID string    `json:"item_received"`
	Accepted       bool      `json:"accepted"`
	Answered       bool      `json:"answered"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"creation_date"`
}

// State derives the lifecycle state from the accepted and answered flags.
// An accepted offer counts as accepted even before answered is set.
func (o *Offer) State() OfferState {
	switch {
	case o.Accepted:
		return OfferAccepted
	case o.Answered:
		return OfferRejected
	default:
		return OfferProposed
	}
}
