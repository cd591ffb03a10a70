package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"swap-backend/model"
	"swap-backend/pkg/geo"
)

type UserUsecase struct {
	repos    Repositories
	geocoder geo.Geocoder
	notes    *NoteUsecase
	offers   *OfferUsecase
}

func NewUserUsecase(repos Repositories, geocoder geo.Geocoder) *UserUsecase {
	return &UserUsecase{
		repos:    repos,
		geocoder: geocoder,
		notes:    NewNoteUsecase(repos),
		offers:   NewOfferUsecase(repos),
	}
}

type RegisterInput struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	model.Location
}

// Account is what a user sees about themselves.
type Account struct {
	model.User
	Categories    []model.Category `json:"categories"`
	Items         []string         `json:"items"`
	Notes         int              `json:"notes"`
	NoteAvg       *float64         `json:"note_avg"`
	PendingOffers []model.Offer    `json:"pending_offers"`
}

// PublicProfile is what anyone sees about a user.
type PublicProfile struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	Location     string             `json:"location"`
	Items        []model.Item       `json:"items"`
	Notes        int                `json:"notes"`
	NoteAvg      *float64           `json:"note_avg"`
	InterestedBy []model.Category   `json:"interested_by"`
	Coordinates  *model.Coordinates `json:"coordinates"`
}

// Register creates a user whose location resolves to coordinates. Nothing
// is stored when the username is taken or the location is unknown.
func (u *UserUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	required := map[string]string{
		"username": in.Username, "first_name": in.FirstName, "last_name": in.LastName,
		"email": in.Email, "street": in.Street, "city": in.City, "region": in.Region, "country": in.Country,
	}
	for _, field := range []string{"username", "first_name", "last_name", "email", "street", "city", "region", "country"} {
		if strings.TrimSpace(required[field]) == "" {
			return nil, validationf("%s is required", field)
		}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, validationf("email: enter a valid email address")
	}

	existing, err := u.repos.Users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	coords, err := u.locate(ctx, in.Location)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:          newID(),
		Username:    in.Username,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		CreatedAt:   time.Now().UTC(),
		Location:    in.Location,
		Coordinates: &coords,
	}
	if err := u.repos.Users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) Account(ctx context.Context, userID string) (*Account, error) {
	user, err := u.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundf("user not found")
	}
	acc := &Account{User: *user}

	if acc.Categories, err = u.interests(ctx, userID); err != nil {
		return nil, err
	}
	items, err := u.repos.Items.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	acc.Items = make([]string, len(items))
	for i, it := range items {
		acc.Items[i] = it.ID
	}
	notes, avg, err := u.notes.Received(ctx, userID)
	if err != nil {
		return nil, err
	}
	acc.Notes, acc.NoteAvg = len(notes), avg
	if acc.PendingOffers, err = u.offers.Pending(ctx, userID); err != nil {
		return nil, err
	}
	return acc, nil
}

func (u *UserUsecase) PublicProfile(ctx context.Context, username string) (*PublicProfile, error) {
	user, err := u.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundf("user not found")
	}
	p := &PublicProfile{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Location:    fmt.Sprintf("%s, %s, %s", user.Location.City, user.Location.Region, user.Location.Country),
		Coordinates: user.Coordinates,
	}
	if p.Items, err = u.repos.Items.ListByOwner(ctx, user.ID); err != nil {
		return nil, err
	}
	if p.Items == nil {
		p.Items = []model.Item{}
	}
	notes, avg, err := u.notes.Received(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	p.Notes, p.NoteAvg = len(notes), avg
	if p.InterestedBy, err = u.interests(ctx, user.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateLocation geocodes the new location and stores it together with the
// resulting coordinates.
func (u *UserUsecase) UpdateLocation(ctx context.Context, userID string, loc model.Location) (*model.User, error) {
	fields := []struct{ name, value string }{
		{"street", loc.Street}, {"city", loc.City}, {"region", loc.Region}, {"country", loc.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, validationf("%s is required", f.name)
		}
	}
	coords, err := u.locate(ctx, loc)
	if err != nil {
		return nil, err
	}
	if err := u.repos.Users.UpdateLocation(ctx, userID, loc, coords); err != nil {
		return nil, err
	}
	user, err := u.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundf("user not found")
	}
	return user, nil
}

// SetInterests replaces the categories the user is interested by.
func (u *UserUsecase) SetInterests(ctx context.Context, userID string, categoryIDs []string) ([]model.Category, error) {
	seen := make(map[string]bool, len(categoryIDs))
	ids := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, err := u.repos.Categories.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, validationf("category %q does not exist", id)
		}
		ids = append(ids, id)
	}
	if err := u.repos.Interests.Replace(ctx, userID, ids); err != nil {
		return nil, err
	}
	return u.interests(ctx, userID)
}

func (u *UserUsecase) interests(ctx context.Context, userID string) ([]model.Category, error) {
	categories, err := u.repos.Interests.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (u *UserUsecase) locate(ctx context.Context, loc model.Location) (model.Coordinates, error) {
	p, err := u.geocoder.Geocode(ctx, geo.Location(loc).Address())
	switch {
	case errors.Is(err, geo.ErrOverQueryLimit):
		return model.Coordinates{}, validationf("the location you specified could not be resolved by our service, please retry later")
	case errors.Is(err, geo.ErrNoMatch):
		return model.Coordinates{}, validationf("the location you specified does not exist")
	case err != nil:
		return model.Coordinates{}, err
	}
	return model.Coordinates{Latitude: p.Lat, Longitude: p.Lon}, nil
}
