package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity. UserID is a soft reference: the
// owning user's ObjectID hex copied at creation time, with no integrity
// enforced by the store (deleting a user does not cascade).
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"` // minutes; bounds are not validated
	Date        time.Time          `bson:"date"`
}

// DateString renders the exercise date in the fixed textual form of the API
// contract, e.g. "Mon Jan 01 2024" (JavaScript Date.prototype.toDateString).
func (e Exercise) DateString() string {
	return e.Date.Format("Mon Jan 02 2006")
}
