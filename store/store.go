package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Annamalai555/mernstack-project/models"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// SearchQuery describes the public catalog query. A leading "-" on Sort
// selects descending order on the remainder of the key.
type SearchQuery struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// ProductUpdate holds the updatable product fields. Image is applied only
// when non-empty so an update without a new upload keeps the old image.
type ProductUpdate struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Image       string
}

type UserStore interface {
	InsertUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProductStore interface {
	InsertProduct(ctx context.Context, p *models.Product) error
	SetProductQR(ctx context.Context, id primitive.ObjectID, qrPath string) error
	FindProductsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Product, error)
	SearchProducts(ctx context.Context, q SearchQuery) ([]models.Product, int64, error)
	UpdateProduct(ctx context.Context, id, owner primitive.ObjectID, upd ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id, owner primitive.ObjectID) (*models.Product, error)
}

type CartStore interface {
	UpsertCart(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (*models.Cart, error)
}

type OrderStore interface {
	InsertOrder(ctx context.Context, o *models.Order) error
	FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

type SubscriptionStore interface {
	InsertSubscription(ctx context.Context, s *models.Subscription) error
}

// Store bundles every collection-level interface. The Mongo implementation
// satisfies all of them; tests substitute per-interface fakes.
type Store interface {
	UserStore
	ProductStore
	CartStore
	OrderStore
	SubscriptionStore
}
