package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionKeys struct {
	P256dh string `bson:"p256dh" json:"p256dh"`
	Auth   string `bson:"auth" json:"auth"`
}

// Subscription stores a browser push endpoint. Notifications are relayed
// over the websocket broadcast channel, not through these records.
type Subscription struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Endpoint  string             `bson:"endpoint" json:"endpoint"`
	Keys      SubscriptionKeys   `bson:"keys" json:"keys"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
