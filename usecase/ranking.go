package usecase

import (
	"cmp"
	"slices"

	"swap-backend/model"
	"swap-backend/pkg/geo"
)

const (
	distanceWeight = 20
	interestWeight = 15
)

// RankedItem is a suggestion together with the score it was ranked by.
type RankedItem struct {
	model.ItemListing
	Score int
}

// SuggestionScore is 20 × proximity score + 15 × the number of users
// interested in the item's category. Proximity contributes nothing when
// either side has no coordinates.
func SuggestionScore(requesterCoords *model.Coordinates, listing model.ItemListing, interestCounts map[string]int) int {
	score := interestWeight * interestCounts[listing.CategoryID]
	if requesterCoords != nil && listing.OwnerCoordinates != nil {
		d := geo.Distance(requesterCoords.Latitude, requesterCoords.Longitude,
			listing.OwnerCoordinates.Latitude, listing.OwnerCoordinates.Longitude)
		score += distanceWeight * geo.DistanceScore(d)
	}
	return score
}

// RankItems orders the suggestions for a requester by descending score,
// then by ascending item id. Archived items and the requester's own items
// are left out.
func RankItems(requesterID string, requesterCoords *model.Coordinates, interestCounts map[string]int, listings []model.ItemListing) []RankedItem {
	ranked := make([]RankedItem, 0, len(listings))
	for _, l := range listings {
		if l.Archived || (requesterID != "" && l.OwnerID == requesterID) {
			continue
		}
		ranked = append(ranked, RankedItem{ItemListing: l, Score: SuggestionScore(requesterCoords, l, interestCounts)})
	}
	slices.SortFunc(ranked, func(a, b RankedItem) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ranked
}
