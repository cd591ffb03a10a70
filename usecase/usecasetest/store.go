// Package usecasetest provides an in-memory implementation of the usecase
// repositories for tests.
package usecasetest

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"swap-backend/model"
	"swap-backend/pkg/geo"
	"swap-backend/usecase"
)

// Store keeps every table in memory behind a single mutex.
type Store struct {
	mu sync.Mutex

	users         map[string]model.User
	categories    []model.Category
	interests     map[string][]string
	items         map[string]model.Item
	images        []model.Image
	likes         []model.Like
	offers        map[string]model.Offer
	notes         []model.Note
	consultations []model.Consultation
	messages      []model.Message
	comments      []model.Comment
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]model.User),
		interests: make(map[string][]string),
		items:     make(map[string]model.Item),
		offers:    make(map[string]model.Offer),
	}
}

// Repositories wires the store into the usecases.
func (s *Store) Repositories() usecase.Repositories {
	return usecase.Repositories{
		Items:         itemRepo{s},
		Categories:    categoryRepo{s},
		Interests:     interestRepo{s},
		Images:        imageRepo{s},
		Likes:         likeRepo{s},
		Offers:        offerRepo{s},
		Notes:         noteRepo{s},
		Users:         userRepo{s},
		Consultations: consultationRepo{s},
		Messages:      messageRepo{s},
		Comments:      commentRepo{s},
	}
}

func (s *Store) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) AddCategory(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, model.Category{ID: id, Name: name})
}

func (s *Store) AddItem(it model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = it
}

func (s *Store) AddInterests(userID string, categoryIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interests[userID] = append(s.interests[userID], categoryIDs...)
}

func (s *Store) AddOffer(o model.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID] = o
}

func (s *Store) AddNote(n model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n)
}

// Item returns a copy of the stored item.
func (s *Store) Item(id string) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *Store) User(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) OfferCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.offers)
}

func (s *Store) NoteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Store) Consultations() []model.Consultation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.consultations)
}

func (s *Store) categoryName(id string) string {
	for _, c := range s.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

type itemRepo struct{ s *Store }

func (r itemRepo) Insert(_ context.Context, it *model.Item) error {
	r.s.AddItem(*it)
	return nil
}

func (r itemRepo) Update(_ context.Context, it *model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; ok {
		r.s.items[it.ID] = *it
	}
	return nil
}

func (r itemRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return false, nil
	}
	delete(r.s.items, id)
	r.s.images = slices.DeleteFunc(r.s.images, func(i model.Image) bool { return i.ItemID == id })
	r.s.likes = slices.DeleteFunc(r.s.likes, func(l model.Like) bool { return l.ItemID == id })
	for oid, o := range r.s.offers {
		if o.ItemGivenID == id || o.ItemReceivedID == id {
			delete(r.s.offers, oid)
		}
	}
	return true, nil
}

func (r itemRepo) GetByID(_ context.Context, id string) (*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r itemRepo) GetByIDs(_ context.Context, ids []string) (map[string]*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]*model.Item, len(ids))
	for _, id := range ids {
		if it, ok := r.s.items[id]; ok {
			out[id] = &it
		}
	}
	return out, nil
}

func (r itemRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Item
	for _, it := range r.s.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b model.Item) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r itemRepo) ListActive(_ context.Context, excludeOwnerID string) ([]model.ItemListing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.ItemListing
	for _, it := range r.s.items {
		if it.Archived || (excludeOwnerID != "" && it.OwnerID == excludeOwnerID) {
			continue
		}
		l := model.ItemListing{Item: it, CategoryName: r.s.categoryName(it.CategoryID)}
		if owner, ok := r.s.users[it.OwnerID]; ok && owner.Coordinates != nil {
			c := *owner.Coordinates
			l.OwnerCoordinates = &c
		}
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b model.ItemListing) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r itemRepo) IncrementViews(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return false, nil
	}
	it.Views++
	r.s.items[id] = it
	return true, nil
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) GetAll(context.Context) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.categories), nil
}

func (r categoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

type interestRepo struct{ s *Store }

func (r interestRepo) ListByUser(_ context.Context, userID string) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Category
	for _, id := range r.s.interests[userID] {
		out = append(out, model.Category{ID: id, Name: r.s.categoryName(id)})
	}
	return out, nil
}

func (r interestRepo) Replace(_ context.Context, userID string, categoryIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.interests[userID] = slices.Clone(categoryIDs)
	return nil
}

func (r interestRepo) CountByCategory(context.Context) (map[string]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[string]int)
	for _, ids := range r.s.interests {
		for _, id := range ids {
			counts[id]++
		}
	}
	return counts, nil
}

type imageRepo struct{ s *Store }

func (r imageRepo) Insert(_ context.Context, img *model.Image) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.images = append(r.s.images, *img)
	return nil
}

func (r imageRepo) GetByID(_ context.Context, id string) (*model.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, img := range r.s.images {
		if img.ID == id {
			return &img, nil
		}
	}
	return nil, nil
}

func (r imageRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.images)
	r.s.images = slices.DeleteFunc(r.s.images, func(i model.Image) bool { return i.ID == id })
	return len(r.s.images) != n, nil
}

func (r imageRepo) ListByItems(_ context.Context, itemIDs []string) (map[string][]model.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string][]model.Image)
	for _, img := range r.s.images {
		if slices.Contains(itemIDs, img.ItemID) {
			out[img.ItemID] = append(out[img.ItemID], img)
		}
	}
	return out, nil
}

type likeRepo struct{ s *Store }

func (r likeRepo) Insert(_ context.Context, like *model.Like) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.likes = append(r.s.likes, *like)
	return nil
}

func (r likeRepo) GetByID(_ context.Context, id string) (*model.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.likes {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

func (r likeRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := len(r.s.likes)
	r.s.likes = slices.DeleteFunc(r.s.likes, func(l model.Like) bool { return l.ID == id })
	return len(r.s.likes) != n, nil
}

func (r likeRepo) List(context.Context) ([]model.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.likes), nil
}

func (r likeRepo) ListByItems(_ context.Context, itemIDs []string) (map[string][]model.Like, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string][]model.Like)
	for _, l := range r.s.likes {
		if slices.Contains(itemIDs, l.ItemID) {
			out[l.ItemID] = append(out[l.ItemID], l)
		}
	}
	return out, nil
}

type offerRepo struct{ s *Store }

func (r offerRepo) Insert(_ context.Context, o *model.Offer) error {
	r.s.AddOffer(*o)
	return nil
}

func (r offerRepo) Update(_ context.Context, o *model.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.offers[o.ID]; ok {
		r.s.offers[o.ID] = *o
	}
	return nil
}

func (r offerRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.offers[id]; !ok {
		return false, nil
	}
	delete(r.s.offers, id)
	r.s.notes = slices.DeleteFunc(r.s.notes, func(n model.Note) bool { return n.OfferID == id })
	return true, nil
}

func (r offerRepo) GetByID(_ context.Context, id string) (*model.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.offers[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r offerRepo) ListPendingByUser(_ context.Context, userID string) ([]model.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Offer
	for _, o := range r.s.offers {
		if o.Answered {
			continue
		}
		if r.s.items[o.ItemGivenID].OwnerID == userID || r.s.items[o.ItemReceivedID].OwnerID == userID {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b model.Offer) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

type noteRepo struct{ s *Store }

func (r noteRepo) Insert(_ context.Context, n *model.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.notes {
		if existing.OfferID == n.OfferID && existing.UserID == n.UserID {
			return usecase.ErrDuplicateNote
		}
	}
	r.s.notes = append(r.s.notes, *n)
	return nil
}

func (r noteRepo) Update(_ context.Context, n *model.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notes {
		if r.s.notes[i].ID == n.ID {
			r.s.notes[i] = *n
		}
	}
	return nil
}

func (r noteRepo) GetByID(_ context.Context, id string) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notes {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, nil
}

func (r noteRepo) ExistsForOfferUser(_ context.Context, offerID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.ContainsFunc(r.s.notes, func(n model.Note) bool {
		return n.OfferID == offerID && n.UserID == userID
	}), nil
}

func (r noteRepo) ListByUser(_ context.Context, userID string) ([]model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Note
	for _, n := range r.s.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Insert(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return usecase.ErrDuplicateUsername
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) UpdateLocation(_ context.Context, userID string, loc model.Location, coords model.Coordinates) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return nil
	}
	u.Location, u.Coordinates = loc, &coords
	r.s.users[userID] = u
	return nil
}

func (r userRepo) GetCoordinates(_ context.Context, userID string) (*model.Coordinates, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok || u.Coordinates == nil {
		return nil, nil
	}
	c := *u.Coordinates
	return &c, nil
}

type consultationRepo struct{ s *Store }

func (r consultationRepo) Insert(_ context.Context, c *model.Consultation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.consultations = append(r.s.consultations, *c)
	return nil
}

type messageRepo struct{ s *Store }

func (r messageRepo) Insert(_ context.Context, m *model.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = append(r.s.messages, *m)
	return nil
}

func (r messageRepo) GetByID(_ context.Context, id string) (*model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.messages {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

func (r messageRepo) ListByUser(_ context.Context, userID string) ([]model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Message
	for _, m := range r.s.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, m)
		}
	}
	// newest first; messages are appended in send order
	slices.Reverse(out)
	return out, nil
}

type commentRepo struct{ s *Store }

func (r commentRepo) Insert(_ context.Context, c *model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments = append(r.s.comments, *c)
	return nil
}

func (r commentRepo) ListByItem(_ context.Context, itemID string) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Comment
	for _, c := range r.s.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Geocoder resolves addresses from a fixed table. Unknown addresses fail
// with geo.ErrNoMatch unless Err is set.
type Geocoder struct {
	Points map[string]geo.Point
	Err    error
	Calls  int
}

func (g *Geocoder) Geocode(_ context.Context, address string) (geo.Point, error) {
	g.Calls++
	if g.Err != nil {
		return geo.Point{}, g.Err
	}
	p, ok := g.Points[address]
	if !ok {
		return geo.Point{}, geo.ErrNoMatch
	}
	return p, nil
}
