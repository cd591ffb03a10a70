package usecase

import (
	"context"

	"swap-backend/model"
)

// Repositories are implemented by dao over MySQL and by usecasetest in memory.
// Get methods return (nil, nil) when the row does not exist.

type ItemRepository interface {
	Insert(ctx context.Context, item *model.Item) error
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Item, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*model.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error)
	// ListActive returns every non-archived item not owned by excludeOwnerID
	// (no exclusion when empty).
	ListActive(ctx context.Context, excludeOwnerID string) ([]model.ItemListing, error)
	// IncrementViews atomically adds one to the view counter.
	IncrementViews(ctx context.Context, id string) (bool, error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
}

type InterestRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Category, error)
	Replace(ctx context.Context, userID string, categoryIDs []string) error
	// CountByCategory returns, per category id, how many users are interested in it.
	CountByCategory(ctx context.Context) (map[string]int, error)
}

type ImageRepository interface {
	Insert(ctx context.Context, img *model.Image) error
	GetByID(ctx context.Context, id string) (*model.Image, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByItems(ctx context.Context, itemIDs []string) (map[string][]model.Image, error)
}

type LikeRepository interface {
	Insert(ctx context.Context, like *model.Like) error
	GetByID(ctx context.Context, id string) (*model.Like, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Like, error)
	ListByItems(ctx context.Context, itemIDs []string) (map[string][]model.Like, error)
}

type OfferRepository interface {
	Insert(ctx context.Context, offer *model.Offer) error
	Update(ctx context.Context, offer *model.Offer) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*model.Offer, error)
	// ListPendingByUser returns unanswered offers touching one of the user's
	// items, newest first.
	ListPendingByUser(ctx context.Context, userID string) ([]model.Offer, error)
}

// ErrDuplicateNote is returned by NoteRepository.Insert when the
// (offer, user) pair is already rated.
var ErrDuplicateNote = &Error{kind: ErrValidation, msg: "you have already noted this offer"}

type NoteRepository interface {
	Insert(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	ExistsForOfferUser(ctx context.Context, offerID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)
}

// ErrDuplicateUsername is returned by UserRepository.Insert when the
// username is taken.
var ErrDuplicateUsername = &Error{kind: ErrConflict, msg: "an user with the same username already exists"}

type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateLocation(ctx context.Context, userID string, loc model.Location, coords model.Coordinates) error
	GetCoordinates(ctx context.Context, userID string) (*model.Coordinates, error)
}

type ConsultationRepository interface {
	Insert(ctx context.Context, c *model.Consultation) error
}

type MessageRepository interface {
	Insert(ctx context.Context, msg *model.Message) error
	GetByID(ctx context.Context, id string) (*model.Message, error)
	ListByUser(ctx context.Context, userID string) ([]model.Message, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, c *model.Comment) error
	ListByItem(ctx context.Context, itemID string) ([]model.Comment, error)
}

// Repositories bundles the storage the usecases are built on.
type Repositories struct {
	Items         ItemRepository
	Categories    CategoryRepository
	Interests     InterestRepository
	Images        ImageRepository
	Likes         LikeRepository
	Offers        OfferRepository
	Notes         NoteRepository
	Users         UserRepository
	Consultations ConsultationRepository
	Messages      MessageRepository
	Comments      CommentRepository
}
