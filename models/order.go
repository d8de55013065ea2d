package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is immutable once created. The total is client-supplied and is
// not recomputed against current product prices.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Items       []CartItem         `bson:"items" json:"items"`
	Address     string             `bson:"address" json:"address"`
	PaymentType string             `bson:"paymentType" json:"paymentType"`
	Total       float64            `bson:"total" json:"total"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
