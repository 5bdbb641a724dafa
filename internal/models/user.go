package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a tracked account. Usernames are not unique; the ObjectID is the
// only identity.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
}
