package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values: 0 = ordinary user, 1 = administrator.
const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     int                `bson:"role" json:"role"`
}

// PublicUser is the shape returned by the auth endpoints. The password
// hash never leaves the server.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
