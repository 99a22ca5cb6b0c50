// Package ledger implements the mutual-aid credit ledger: accounts,
// credit movements, the help request state machine and trust scores.
//
// Every command runs as one unit under a single lock and one store
// transaction. A failed command leaves no trace; a committed one notifies
// the observers in order.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/helpledger/metrics"
	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "ledger")
}

// LedgerCore is the command and query surface of the ledger
type LedgerCore interface {
	Ping() error

	// Commands
	Register(identity, name, location string) (*schema.Account, error)
	CreateRequest(requester, title, description, location string, helpType schema.HelpType) (*schema.HelpRequest, error)
	AcceptRequest(requestID int64, helper string) (*schema.HelpRequest, error)
	CompleteRequest(requestID int64, caller string) (*schema.HelpRequest, error)
	SubmitReview(requestID int64, reviewer, reviewed string, rating int, comment string) (*schema.Review, error)

	// Queries
	GetAccount(identity string) (schema.Account, error)
	GetRequest(requestID int64) (*schema.HelpRequest, error)
	OpenRequests() ([]schema.HelpRequest, error)
	RequestsInvolving(identity string) ([]schema.HelpRequest, error)
	RequestCount() (int64, error)
	ReviewsForRequest(requestID int64) ([]schema.Review, error)
	ReviewsForIdentity(identity string) ([]schema.Review, error)
	CostFor(helpType schema.HelpType) (int64, error)
	Schedule() CostSchedule
}

// Ledger is the facade over the ledger components
type Ledger struct {
	mu sync.Mutex

	store     store.LedgerStore
	schedule  CostSchedule
	now       func() time.Time
	observers []Observer

	accounts accountBook
	credits  creditLedger
	requests requestRegistry
	reviews  reviewBook
}

var _ LedgerCore = (*Ledger)(nil)

type Option func(*Ledger)

// WithSchedule replaces the default cost schedule
func WithSchedule(schedule CostSchedule) Option {
	return func(l *Ledger) {
		l.schedule = schedule
	}
}

// WithClock sets the source of record timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithObserver registers an observer of committed commands
func WithObserver(o Observer) Option {
	return func(l *Ledger) {
		l.observers = append(l.observers, o)
	}
}

// New returns a ledger kept in s
func New(s store.LedgerStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:    s,
		schedule: DefaultCostSchedule(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.accounts = accountBook{now: l.now}
	l.credits = creditLedger{schedule: l.schedule}
	l.requests = requestRegistry{accounts: l.accounts, credits: l.credits, now: l.now}
	l.reviews = reviewBook{now: l.now}
	return l
}

// Observe registers an observer after construction
func (l *Ledger) Observe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Ping is to check the storage health status
func (l *Ledger) Ping() error {
	return l.store.Ping()
}

type movement struct {
	direction string
	amount    int64
}

// unit gathers what a command produced. Nothing in it leaves the ledger
// until the transaction commits.
type unit struct {
	tx        store.Tx
	events    []schema.Event
	movements []movement
}

func (u *unit) emit(e schema.Event) {
	u.events = append(u.events, e)
}

func (u *unit) moved(direction string, amount int64) {
	u.movements = append(u.movements, movement{direction, amount})
}

// run executes one command as an indivisible unit
func (l *Ledger) run(command string, fields logrus.Fields, fn func(u *unit) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	var u *unit
	err := l.store.Transaction(func(tx store.Tx) error {
		u = &unit{tx: tx}
		return fn(u)
	})

	kind := ErrorKind(err)
	metrics.ObserveCommand(command, kind, time.Since(start))

	logger := log.WithField("command", command).WithFields(fields)
	if err != nil {
		if kind == "Internal" {
			logger.WithError(err).Error("command failed")
		} else {
			logger.WithError(err).WithField("kind", kind).Debug("command rejected")
		}
		return err
	}
	logger.Info("command committed")

	for _, m := range u.movements {
		metrics.CreditMoved(m.direction, m.amount)
	}
	for _, e := range u.events {
		switch e.Kind {
		case schema.EventRequestCreated:
			metrics.OpenRequestsChanged(1)
		case schema.EventRequestMatched:
			metrics.OpenRequestsChanged(-1)
		}
		for _, o := range l.observers {
			o.Notify(e)
		}
	}
	return nil
}

// view runs a read-only query
func (l *Ledger) view(fn func(tx store.Tx) error) error {
	return l.store.View(fn)
}

// Register creates an account for identity
func (l *Ledger) Register(identity, name, location string) (*schema.Account, error) {
	var a *schema.Account
	err := l.run("register", logrus.Fields{"identity": identity}, func(u *unit) (err error) {
		a, err = l.accounts.register(u, identity, name, location)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateRequest posts a help request paid from the requester's balance
func (l *Ledger) CreateRequest(requester, title, description, location string, helpType schema.HelpType) (*schema.HelpRequest, error) {
	var r *schema.HelpRequest
	err := l.run("createRequest", logrus.Fields{"identity": requester, "help_type": helpType}, func(u *unit) (err error) {
		r, err = l.requests.create(u, requester, title, description, location, helpType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AcceptRequest matches an open request with helper and pays the reward
func (l *Ledger) AcceptRequest(requestID int64, helper string) (*schema.HelpRequest, error) {
	var r *schema.HelpRequest
	err := l.run("acceptRequest", logrus.Fields{"identity": helper, "request_id": requestID}, func(u *unit) (err error) {
		r, err = l.requests.accept(u, requestID, helper)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CompleteRequest closes a matched request on behalf of one of its parties
func (l *Ledger) CompleteRequest(requestID int64, caller string) (*schema.HelpRequest, error) {
	var r *schema.HelpRequest
	err := l.run("completeRequest", logrus.Fields{"identity": caller, "request_id": requestID}, func(u *unit) (err error) {
		r, err = l.requests.complete(u, requestID, caller)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// SubmitReview rates the other party of a completed request
func (l *Ledger) SubmitReview(requestID int64, reviewer, reviewed string, rating int, comment string) (*schema.Review, error) {
	var r *schema.Review
	fields := logrus.Fields{"identity": reviewer, "reviewed": reviewed, "request_id": requestID, "rating": rating}
	err := l.run("submitReview", fields, func(u *unit) (err error) {
		r, err = l.reviews.submit(u, requestID, reviewer, reviewed, rating, comment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetAccount returns a snapshot of the account. An unknown identity is not
// an error: the snapshot comes back with Exists unset.
func (l *Ledger) GetAccount(identity string) (schema.Account, error) {
	var a schema.Account
	err := l.view(func(tx store.Tx) (err error) {
		a, err = l.accounts.get(tx, identity)
		return err
	})
	return a, err
}

func (l *Ledger) GetRequest(requestID int64) (*schema.HelpRequest, error) {
	var r *schema.HelpRequest
	err := l.view(func(tx store.Tx) (err error) {
		r, err = l.requests.get(tx, requestID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenRequests lists open requests in posting order
func (l *Ledger) OpenRequests() ([]schema.HelpRequest, error) {
	var requests []schema.HelpRequest
	err := l.view(func(tx store.Tx) (err error) {
		requests, err = tx.ListRequests(store.RequestFilter{State: schema.HelpOpen})
		return err
	})
	return requests, err
}

// RequestsInvolving lists requests where identity is requester or helper,
// in posting order
func (l *Ledger) RequestsInvolving(identity string) ([]schema.HelpRequest, error) {
	var requests []schema.HelpRequest
	err := l.view(func(tx store.Tx) (err error) {
		requests, err = tx.ListRequests(store.RequestFilter{Party: identity})
		return err
	})
	return requests, err
}

// RequestCount is the number of requests ever created, which is also the
// id of the latest one
func (l *Ledger) RequestCount() (int64, error) {
	var count int64
	err := l.view(func(tx store.Tx) (err error) {
		count, err = tx.RequestCount()
		return err
	})
	return count, err
}

func (l *Ledger) ReviewsForRequest(requestID int64) ([]schema.Review, error) {
	var reviews []schema.Review
	err := l.view(func(tx store.Tx) (err error) {
		reviews, err = tx.ReviewsByRequest(requestID)
		return err
	})
	return reviews, err
}

func (l *Ledger) ReviewsForIdentity(identity string) ([]schema.Review, error) {
	var reviews []schema.Review
	err := l.view(func(tx store.Tx) (err error) {
		reviews, err = tx.ReviewsByReviewed(identity)
		return err
	})
	return reviews, err
}

func (l *Ledger) CostFor(helpType schema.HelpType) (int64, error) {
	return l.schedule.CostFor(helpType)
}

func (l *Ledger) Schedule() CostSchedule {
	return l.schedule
}

// notFound turns a missing store record into the given ledger error
func notFound(err error, kind error, format string, args ...interface{}) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
	}
	return err
}
