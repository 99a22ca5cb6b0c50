package store

import (
	"sync"

	"github.com/bitmark-inc/helpledger/schema"
)

// memoryStore keeps the whole ledger in process. Writes of a transaction
// are staged in a memoryTx and merged on commit.
type memoryStore struct {
	mu sync.RWMutex

	accounts          map[string]*schema.Account
	requests          []*schema.HelpRequest
	reviews           []*schema.Review
	reviewsByRequest  map[int64][]int
	reviewsByReviewed map[string][]int
}

var _ LedgerStore = (*memoryStore)(nil)

// NewMemoryStore returns an empty in-process ledger store
func NewMemoryStore() LedgerStore {
	return &memoryStore{
		accounts:          map[string]*schema.Account{},
		requests:          []*schema.HelpRequest{},
		reviews:           []*schema.Review{},
		reviewsByRequest:  map[int64][]int{},
		reviewsByReviewed: map[string][]int{},
	}
}

func (s *memoryStore) Ping() error {
	return nil
}

func (s *memoryStore) Transaction(fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newMemoryTx(s, false)
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *memoryStore) View(fn func(Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(newMemoryTx(s, true))
}

type memoryTx struct {
	s        *memoryStore
	readOnly bool

	accounts    map[string]*schema.Account
	requests    map[int64]*schema.HelpRequest
	newRequests []*schema.HelpRequest
	newReviews  []*schema.Review
}

func newMemoryTx(s *memoryStore, readOnly bool) *memoryTx {
	return &memoryTx{
		s:        s,
		readOnly: readOnly,
		accounts: map[string]*schema.Account{},
		requests: map[int64]*schema.HelpRequest{},
	}
}

func (tx *memoryTx) commit() {
	for id, a := range tx.accounts {
		tx.s.accounts[id] = a
	}

	for id, r := range tx.requests {
		tx.s.requests[id-1] = r
	}
	tx.s.requests = append(tx.s.requests, tx.newRequests...)

	for _, r := range tx.newReviews {
		i := len(tx.s.reviews)
		tx.s.reviews = append(tx.s.reviews, r)
		tx.s.reviewsByRequest[r.RequestID] = append(tx.s.reviewsByRequest[r.RequestID], i)
		tx.s.reviewsByReviewed[r.Reviewed] = append(tx.s.reviewsByReviewed[r.Reviewed], i)
	}
}

func (tx *memoryTx) GetAccount(identity string) (*schema.Account, error) {
	a, ok := tx.accounts[identity]
	if !ok {
		a, ok = tx.s.accounts[identity]
	}
	if !ok {
		return nil, ErrRecordNotFound
	}

	account := *a
	return &account, nil
}

func (tx *memoryTx) CreateAccount(a *schema.Account) error {
	if tx.readOnly {
		return ErrReadOnly
	}
	if _, err := tx.GetAccount(a.Identity); err == nil {
		return ErrDuplicateAccount
	}

	account := *a
	account.Exists = true
	tx.accounts[a.Identity] = &account
	return nil
}

func (tx *memoryTx) UpdateAccount(a *schema.Account) error {
	if tx.readOnly {
		return ErrReadOnly
	}
	if _, err := tx.GetAccount(a.Identity); err != nil {
		return err
	}

	account := *a
	tx.accounts[a.Identity] = &account
	return nil
}

func (tx *memoryTx) RequestCount() (int64, error) {
	return int64(len(tx.s.requests) + len(tx.newRequests)), nil
}

// request returns the staged or committed record for id without copying
func (tx *memoryTx) request(id int64) *schema.HelpRequest {
	committed := int64(len(tx.s.requests))
	switch {
	case id < 1:
		return nil
	case id <= committed:
		if r, ok := tx.requests[id]; ok {
			return r
		}
		return tx.s.requests[id-1]
	case id-committed <= int64(len(tx.newRequests)):
		return tx.newRequests[id-committed-1]
	default:
		return nil
	}
}

func (tx *memoryTx) CreateRequest(r *schema.HelpRequest) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	request := *r
	tx.newRequests = append(tx.newRequests, &request)
	return nil
}

func (tx *memoryTx) GetRequest(id int64) (*schema.HelpRequest, error) {
	r := tx.request(id)
	if r == nil {
		return nil, ErrRecordNotFound
	}

	request := *r
	return &request, nil
}

func (tx *memoryTx) UpdateRequest(r *schema.HelpRequest) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	current := tx.request(r.ID)
	if current == nil {
		return ErrRecordNotFound
	}

	request := *r
	if r.ID > int64(len(tx.s.requests)) {
		*current = request
		return nil
	}
	tx.requests[r.ID] = &request
	return nil
}

func (tx *memoryTx) ListRequests(filter RequestFilter) ([]schema.HelpRequest, error) {
	count, _ := tx.RequestCount()

	requests := make([]schema.HelpRequest, 0)
	for id := int64(1); id <= count; id++ {
		r := tx.request(id)
		if filter.match(r) {
			requests = append(requests, *r)
		}
	}
	return requests, nil
}

func (tx *memoryTx) AddReview(r *schema.Review) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	review := *r
	review.ID = int64(len(tx.s.reviews) + len(tx.newReviews) + 1)
	tx.newReviews = append(tx.newReviews, &review)
	r.ID = review.ID
	return nil
}

func (tx *memoryTx) ReviewsByRequest(requestID int64) ([]schema.Review, error) {
	return tx.collectReviews(tx.s.reviewsByRequest[requestID], func(r *schema.Review) bool {
		return r.RequestID == requestID
	}), nil
}

func (tx *memoryTx) ReviewsByReviewed(identity string) ([]schema.Review, error) {
	return tx.collectReviews(tx.s.reviewsByReviewed[identity], func(r *schema.Review) bool {
		return r.Reviewed == identity
	}), nil
}

func (tx *memoryTx) collectReviews(index []int, staged func(*schema.Review) bool) []schema.Review {
	reviews := make([]schema.Review, 0, len(index))
	for _, i := range index {
		reviews = append(reviews, *tx.s.reviews[i])
	}
	for _, r := range tx.newReviews {
		if staged(r) {
			reviews = append(reviews, *r)
		}
	}
	return reviews
}
