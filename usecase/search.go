package usecase

import (
	"cmp"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"swap-backend/model"
	"swap-backend/pkg/geo"
)

type OrderBy string

const (
	OrderByCreation OrderBy = ""
	OrderByName     OrderBy = "name"
	OrderByCategory OrderBy = "category"
	OrderByPriceMin OrderBy = "price_min"
	OrderByPriceMax OrderBy = "price_max"
	OrderByRange    OrderBy = "range"
	OrderByDate     OrderBy = "date"
)

var orderings = map[string]OrderBy{
	"name":      OrderByName,
	"category":  OrderByCategory,
	"price_min": OrderByPriceMin,
	"price_max": OrderByPriceMax,
	"range":     OrderByRange,
	"date":      OrderByDate,
}

// SearchQuery is a parsed item search. Nil fields were not supplied.
type SearchQuery struct {
	Text     *string
	Category *string
	PriceMin *float64
	PriceMax *float64
	Lat      *float64
	Lon      *float64
	Radius   *float64
	OrderBy  OrderBy
}

// ParseSearchQuery reads the q, category, price_min, price_max, lat, lon,
// radius and order_by parameters. An empty numeric parameter counts as absent;
// anything else that is not a finite number is rejected.
func ParseSearchQuery(values url.Values) (SearchQuery, error) {
	var q SearchQuery
	if values.Has("q") {
		text := values.Get("q")
		q.Text = &text
	}
	if values.Has("category") {
		category := values.Get("category")
		q.Category = &category
	}

	numbers := []struct {
		key string
		dst **float64
	}{
		{"price_min", &q.PriceMin},
		{"price_max", &q.PriceMax},
		{"lat", &q.Lat},
		{"lon", &q.Lon},
		{"radius", &q.Radius},
	}
	for _, n := range numbers {
		raw := strings.TrimSpace(values.Get(n.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return SearchQuery{}, validationf("%s: a valid number is required", n.key)
		}
		*n.dst = &v
	}

	if raw := values.Get("order_by"); raw != "" {
		order, ok := orderings[raw]
		if !ok {
			return SearchQuery{}, validationf("order_by: %q is not a valid choice", raw)
		}
		q.OrderBy = order
	}
	return q, nil
}

// referencePoint is the query location when both lat and lon are given,
// otherwise the requester's stored coordinates, otherwise nil.
func (q SearchQuery) referencePoint(requesterCoords *model.Coordinates) *geo.Point {
	if q.Lat != nil && q.Lon != nil {
		return &geo.Point{Lat: *q.Lat, Lon: *q.Lon}
	}
	if requesterCoords != nil {
		return &geo.Point{Lat: requesterCoords.Latitude, Lon: requesterCoords.Longitude}
	}
	return nil
}

type candidate struct {
	listing  model.ItemListing
	distance float64
	located  bool // distance is known
}

type itemPredicate func(c *candidate) bool

// predicates returns the membership rules in the order they apply.
func (q SearchQuery) predicates(requesterID string, ref *geo.Point) []itemPredicate {
	preds := []itemPredicate{
		func(c *candidate) bool { return !c.listing.Archived },
	}

	if q.Text != nil {
		needle := strings.ToLower(*q.Text)
		preds = append(preds, func(c *candidate) bool {
			return strings.Contains(strings.ToLower(c.listing.Name), needle) ||
				strings.Contains(strings.ToLower(c.listing.Description), needle)
		})
	}

	floor := 0.0
	if q.PriceMin != nil {
		floor = *q.PriceMin
	}
	preds = append(preds, func(c *candidate) bool { return float64(c.listing.PriceMin) >= floor })

	if requesterID != "" {
		preds = append(preds, func(c *candidate) bool { return c.listing.OwnerID != requesterID })
	}

	if q.Category != nil {
		name := *q.Category
		preds = append(preds, func(c *candidate) bool { return c.listing.CategoryName == name })
	}

	if q.PriceMax != nil {
		ceiling := *q.PriceMax
		preds = append(preds, func(c *candidate) bool { return float64(c.listing.PriceMax) <= ceiling })
	}

	if ref != nil && q.Radius != nil {
		radius := *q.Radius
		preds = append(preds, func(c *candidate) bool { return c.located && c.distance <= radius })
	}
	return preds
}

// FilterItems runs the search pipeline over listings for a requester
// (requesterID is empty when anonymous). The result is never nil.
func FilterItems(q SearchQuery, requesterID string, requesterCoords *model.Coordinates, listings []model.ItemListing) ([]model.ItemListing, error) {
	ref := q.referencePoint(requesterCoords)
	if q.OrderBy == OrderByRange && ref == nil {
		return nil, validationf("order_by: range requires lat and lon or a located account")
	}

	preds := q.predicates(requesterID, ref)
	kept := make([]candidate, 0, len(listings))
next:
	for _, l := range listings {
		c := candidate{listing: l}
		if ref != nil && l.OwnerCoordinates != nil {
			c.distance = geo.Distance(ref.Lat, ref.Lon, l.OwnerCoordinates.Latitude, l.OwnerCoordinates.Longitude)
			c.located = true
		}
		for _, keep := range preds {
			if !keep(&c) {
				continue next
			}
		}
		kept = append(kept, c)
	}

	sortCandidates(kept, q.OrderBy)

	out := make([]model.ItemListing, len(kept))
	for i, c := range kept {
		out[i] = c.listing
	}
	return out, nil
}

func byCreation(a, b *candidate) int {
	if c := a.listing.CreatedAt.Compare(b.listing.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.listing.ID, b.listing.ID)
}

func sortCandidates(cs []candidate, order OrderBy) {
	slices.SortFunc(cs, func(a, b candidate) int { return byCreation(&a, &b) })

	var key func(a, b candidate) int
	switch order {
	case OrderByName:
		key = func(a, b candidate) int { return cmp.Compare(a.listing.Name, b.listing.Name) }
	case OrderByCategory:
		key = func(a, b candidate) int { return cmp.Compare(a.listing.CategoryName, b.listing.CategoryName) }
	case OrderByPriceMin:
		key = func(a, b candidate) int { return cmp.Compare(a.listing.PriceMin, b.listing.PriceMin) }
	case OrderByPriceMax:
		// descending
		key = func(a, b candidate) int { return cmp.Compare(b.listing.PriceMax, a.listing.PriceMax) }
	case OrderByRange:
		key = func(a, b candidate) int {
			switch {
			case a.located && b.located:
				return cmp.Compare(a.distance, b.distance)
			case a.located:
				return -1
			case b.located:
				return 1
			}
			return 0
		}
	default:
		// creation order, date included
		return
	}
	slices.SortStableFunc(cs, key)
}
