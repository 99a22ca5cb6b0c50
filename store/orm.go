package store

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/helpledger/schema"
)

const (
	ormLogPrefix       = "orm"
	uniqueViolationErr = "23505"
)

// ormStore keeps the ledger in a relational database through gorm
type ormStore struct {
	ormDB *gorm.DB
}

var _ LedgerStore = (*ormStore)(nil)

// NewORMStore returns a ledger store backed by ormDB. The tables are
// created by schema/command/migrate.
func NewORMStore(ormDB *gorm.DB) LedgerStore {
	return &ormStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ormStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func (s *ormStore) Transaction(fn func(Tx) error) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&ormTx{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.WithField("prefix", ormLogPrefix).WithError(rbErr).Error("rollback failed")
		}
		return err
	}

	return tx.Commit().Error
}

func (s *ormStore) View(fn func(Tx) error) error {
	return fn(&ormTx{db: s.ormDB, readOnly: true})
}

type ormTx struct {
	db       *gorm.DB
	readOnly bool
}

func notFoundOr(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrRecordNotFound
	}
	return err
}

func (tx *ormTx) GetAccount(identity string) (*schema.Account, error) {
	var a schema.Account
	if err := tx.db.Where("identity = ?", identity).First(&a).Error; err != nil {
		return nil, notFoundOr(err)
	}
	a.Exists = true
	return &a, nil
}

func (tx *ormTx) CreateAccount(a *schema.Account) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	if err := tx.db.Create(a).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationErr {
			return ErrDuplicateAccount
		}
		return err
	}
	a.Exists = true
	return nil
}

func (tx *ormTx) UpdateAccount(a *schema.Account) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	result := tx.db.Model(&schema.Account{}).Where("identity = ?", a.Identity).Updates(map[string]interface{}{
		"name":           a.Name,
		"location":       a.Location,
		"trust_score":    a.TrustScore,
		"total_helped":   a.TotalHelped,
		"total_received": a.TotalReceived,
		"balance":        a.Balance,
		"updated_at":     a.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (tx *ormTx) RequestCount() (int64, error) {
	var count int64
	if err := tx.db.Model(&schema.HelpRequest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (tx *ormTx) CreateRequest(r *schema.HelpRequest) error {
	if tx.readOnly {
		return ErrReadOnly
	}
	return tx.db.Create(r).Error
}

func (tx *ormTx) GetRequest(id int64) (*schema.HelpRequest, error) {
	var r schema.HelpRequest
	if err := tx.db.Where("id = ?", id).First(&r).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &r, nil
}

// UpdateRequest writes the mutable columns of a request. Requester, id and
// content never change after creation.
func (tx *ormTx) UpdateRequest(r *schema.HelpRequest) error {
	if tx.readOnly {
		return ErrReadOnly
	}

	result := tx.db.Model(&schema.HelpRequest{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
		"state":  r.State,
		"helper": r.Helper,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update request %d: %w", r.ID, ErrRecordNotFound)
	}
	return nil
}

func (tx *ormTx) ListRequests(filter RequestFilter) ([]schema.HelpRequest, error) {
	q := tx.db.Order("id")
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}
	if filter.Party != "" {
		q = q.Where("requester = ? OR (helper = ? AND state <> ?)", filter.Party, filter.Party, schema.HelpOpen)
	}

	requests := []schema.HelpRequest{}
	if err := q.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (tx *ormTx) AddReview(r *schema.Review) error {
	if tx.readOnly {
		return ErrReadOnly
	}
	return tx.db.Create(r).Error
}

func (tx *ormTx) ReviewsByRequest(requestID int64) ([]schema.Review, error) {
	reviews := []schema.Review{}
	if err := tx.db.Where("request_id = ?", requestID).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (tx *ormTx) ReviewsByReviewed(identity string) ([]schema.Review, error) {
	reviews := []schema.Review{}
	if err := tx.db.Where("reviewed = ?", identity).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
