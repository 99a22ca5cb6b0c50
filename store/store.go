package store

import (
	"fmt"

	"github.com/bitmark-inc/helpledger/schema"
)

var (
	ErrRecordNotFound   = fmt.Errorf("record not found")
	ErrDuplicateAccount = fmt.Errorf("account already exists")
	ErrReadOnly         = fmt.Errorf("write in a read-only transaction")
)

// Pinger - check the storage health status
type Pinger interface {
	Ping() error
}

// Tx is the set of record operations a ledger command runs against. All
// writes made through one Tx become visible together or not at all.
type Tx interface {
	// Account
	GetAccount(identity string) (*schema.Account, error)
	CreateAccount(a *schema.Account) error
	UpdateAccount(a *schema.Account) error

	// Help
	RequestCount() (int64, error)
	CreateRequest(r *schema.HelpRequest) error
	GetRequest(id int64) (*schema.HelpRequest, error)
	UpdateRequest(r *schema.HelpRequest) error
	ListRequests(filter RequestFilter) ([]schema.HelpRequest, error)

	// Review
	AddReview(r *schema.Review) error
	ReviewsByRequest(requestID int64) ([]schema.Review, error)
	ReviewsByReviewed(identity string) ([]schema.Review, error)
}

// RequestFilter narrows ListRequests. Zero values match everything.
type RequestFilter struct {
	State schema.HelpState
	// Party matches requests where the identity is the requester or the helper
	Party string
}

func (f RequestFilter) match(r *schema.HelpRequest) bool {
	if f.State != "" && r.State != f.State {
		return false
	}
	if f.Party != "" && !r.Involves(f.Party) {
		return false
	}
	return true
}

// LedgerStore is the persistence behind the ledger
type LedgerStore interface {
	Pinger

	// Transaction runs fn and commits its writes only if fn returns nil.
	Transaction(fn func(Tx) error) error

	// View runs fn against a read-only Tx.
	View(fn func(Tx) error) error
}
