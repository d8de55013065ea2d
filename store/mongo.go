package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Annamalai555/mernstack-project/models"
)

const opTimeout = 10 * time.Second

// Mongo is the document-store implementation backed by mongo-driver.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes creates the unique email index on users and the unique
// one-cart-per-user index on carts.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := m.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = m.db.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// ----- Users -----

func (m *Mongo) InsertUser(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := m.db.Collection("users").InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var u models.User
	err := m.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ----- Products -----

func (m *Mongo) InsertProduct(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := m.db.Collection("products").InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) SetProductQR(ctx context.Context, id primitive.ObjectID, qrPath string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := m.db.Collection("products").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"qrCode": qrPath, "updatedAt": time.Now()}},
	)
	return err
}

func (m *Mongo) FindProductsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := m.db.Collection("products").Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Mongo) SearchProducts(ctx context.Context, q SearchQuery) ([]models.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Case-insensitive substring match on title only.
	filter := bson.M{"title": bson.M{"$regex": q.Search, "$options": "i"}}

	coll := m.db.Collection("products")
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortKey := q.Sort
	sortDir := 1
	if strings.HasPrefix(sortKey, "-") {
		sortKey = strings.TrimPrefix(sortKey, "-")
		sortDir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: sortDir}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (m *Mongo) UpdateProduct(ctx context.Context, id, owner primitive.ObjectID, upd ProductUpdate) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{
		"title":       upd.Title,
		"description": upd.Description,
		"price":       upd.Price,
		"category":    upd.Category,
		"updatedAt":   time.Now(),
	}
	if upd.Image != "" {
		set["image"] = upd.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Product
	err := m.db.Collection("products").FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id, owner primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var p models.Product
	err := m.db.Collection("products").FindOneAndDelete(ctx,
		bson.M{"_id": id, "user": owner},
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ----- Carts -----

func (m *Mongo) UpsertCart(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart models.Cart
	err := m.db.Collection("carts").FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}},
		opts,
	).Decode(&cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ----- Orders -----

func (m *Mongo) InsertOrder(ctx context.Context, o *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	o.CreatedAt = time.Now()
	res, err := m.db.Collection("orders").InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := m.db.Collection("orders").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ----- Subscriptions -----

func (m *Mongo) InsertSubscription(ctx context.Context, s *models.Subscription) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	s.CreatedAt = time.Now()
	res, err := m.db.Collection("subscriptions").InsertOne(ctx, s)
	if err != nil {
		return err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
