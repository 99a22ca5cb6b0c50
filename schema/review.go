package schema

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating one side of a completed request gives the other.
type Review struct {
	ID        int64     `json:"id" gorm:"primary_key" bson:"id"`
	RequestID int64     `json:"request_id" gorm:"index" bson:"request_id"`
	Reviewer  string    `json:"reviewer" bson:"reviewer"`
	Reviewed  string    `json:"reviewed" gorm:"index" bson:"reviewed"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
