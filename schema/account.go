package schema

import (
	"time"
)

const (
	InitialBalance    int64 = 10
	InitialTrustScore       = 50
)

// Account is the ledger record of one participant. Identity is an opaque
// address-like key given by the caller.
type Account struct {
	Identity      string    `json:"identity" gorm:"primary_key" bson:"identity"`
	Name          string    `json:"name" bson:"name"`
	Location      string    `json:"location" bson:"location"`
	TrustScore    int       `json:"trust_score" bson:"trust_score"`
	TotalHelped   int64     `json:"total_helped" bson:"total_helped"`
	TotalReceived int64     `json:"total_received" bson:"total_received"`
	Balance       int64     `json:"balance" bson:"balance"`
	Exists        bool      `json:"registered" gorm:"-" bson:"-"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// NewAccount returns a freshly registered account with the initial balance
// and trust score.
func NewAccount(identity, name, location string, now time.Time) *Account {
	return &Account{
		Identity:   identity,
		Name:       name,
		Location:   location,
		TrustScore: InitialTrustScore,
		Balance:    InitialBalance,
		Exists:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
