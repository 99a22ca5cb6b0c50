package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/helpledger/schema"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store LedgerStore
	now   time.Time
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.now = time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC)
}

func (s *MemoryStoreTestSuite) seedRequest(requester string) int64 {
	var id int64
	s.NoError(s.store.Transaction(func(tx Tx) error {
		count, err := tx.RequestCount()
		if err != nil {
			return err
		}
		id = count + 1
		return tx.CreateRequest(&schema.HelpRequest{
			ID:        id,
			Requester: requester,
			Title:     "Ride",
			State:     schema.HelpOpen,
			CreatedAt: s.now,
		})
	}))
	return id
}

func (s *MemoryStoreTestSuite) TestAccountRoundTrip() {
	s.NoError(s.store.Transaction(func(tx Tx) error {
		return tx.CreateAccount(schema.NewAccount("alice", "Alice", "Paris", s.now))
	}))

	s.NoError(s.store.View(func(tx Tx) error {
		a, err := tx.GetAccount("alice")
		s.NoError(err)
		s.True(a.Exists)
		s.Equal("Alice", a.Name)
		s.Equal(schema.InitialBalance, a.Balance)
		s.Equal(schema.InitialTrustScore, a.TrustScore)

		_, err = tx.GetAccount("bob")
		s.Equal(ErrRecordNotFound, err)
		return nil
	}))
}

func (s *MemoryStoreTestSuite) TestDuplicateAccount() {
	s.NoError(s.store.Transaction(func(tx Tx) error {
		return tx.CreateAccount(schema.NewAccount("alice", "Alice", "Paris", s.now))
	}))

	err := s.store.Transaction(func(tx Tx) error {
		return tx.CreateAccount(schema.NewAccount("alice", "Again", "Rome", s.now))
	})
	s.Equal(ErrDuplicateAccount, err)
}

func (s *MemoryStoreTestSuite) TestRollbackDiscardsEveryWrite() {
	s.NoError(s.store.Transaction(func(tx Tx) error {
		return tx.CreateAccount(schema.NewAccount("alice", "Alice", "Paris", s.now))
	}))
	id := s.seedRequest("alice")

	failure := fmt.Errorf("abort")
	err := s.store.Transaction(func(tx Tx) error {
		a, err := tx.GetAccount("alice")
		s.NoError(err)
		a.Balance = 0
		s.NoError(tx.UpdateAccount(a))

		r, err := tx.GetRequest(id)
		s.NoError(err)
		r.State = schema.HelpMatched
		r.Helper = "bob"
		s.NoError(tx.UpdateRequest(r))

		s.NoError(tx.CreateAccount(schema.NewAccount("bob", "", "Paris", s.now)))
		s.NoError(tx.CreateRequest(&schema.HelpRequest{ID: id + 1, Requester: "alice", State: schema.HelpOpen}))
		s.NoError(tx.AddReview(&schema.Review{RequestID: id, Reviewer: "alice", Reviewed: "bob", Rating: 5}))

		// staged writes are visible inside the transaction
		count, _ := tx.RequestCount()
		s.Equal(id+1, count)
		return failure
	})
	s.Equal(failure, err)

	s.NoError(s.store.View(func(tx Tx) error {
		a, err := tx.GetAccount("alice")
		s.NoError(err)
		s.Equal(schema.InitialBalance, a.Balance)

		r, err := tx.GetRequest(id)
		s.NoError(err)
		s.Equal(schema.HelpOpen, r.State)
		s.Empty(r.Helper)

		_, err = tx.GetAccount("bob")
		s.Equal(ErrRecordNotFound, err)

		count, _ := tx.RequestCount()
		s.Equal(id, count)

		reviews, _ := tx.ReviewsByReviewed("bob")
		s.Len(reviews, 0)
		return nil
	}))
}

func (s *MemoryStoreTestSuite) TestReadsReturnCopies() {
	id := s.seedRequest("alice")

	s.NoError(s.store.View(func(tx Tx) error {
		r, err := tx.GetRequest(id)
		s.NoError(err)
		r.State = schema.HelpCompleted
		return nil
	}))

	s.NoError(s.store.View(func(tx Tx) error {
		r, err := tx.GetRequest(id)
		s.NoError(err)
		s.Equal(schema.HelpOpen, r.State)
		return nil
	}))
}

func (s *MemoryStoreTestSuite) TestViewIsReadOnly() {
	err := s.store.View(func(tx Tx) error {
		return tx.CreateAccount(schema.NewAccount("alice", "", "", s.now))
	})
	s.Equal(ErrReadOnly, err)
}

func (s *MemoryStoreTestSuite) TestListRequestsKeepsInsertionOrder() {
	first := s.seedRequest("alice")
	second := s.seedRequest("bob")
	third := s.seedRequest("carol")

	s.NoError(s.store.Transaction(func(tx Tx) error {
		r, err := tx.GetRequest(second)
		if err != nil {
			return err
		}
		r.State = schema.HelpMatched
		r.Helper = "alice"
		return tx.UpdateRequest(r)
	}))

	s.NoError(s.store.View(func(tx Tx) error {
		open, err := tx.ListRequests(RequestFilter{State: schema.HelpOpen})
		s.NoError(err)
		s.Len(open, 2)
		s.Equal(first, open[0].ID)
		s.Equal(third, open[1].ID)

		mine, err := tx.ListRequests(RequestFilter{Party: "alice"})
		s.NoError(err)
		s.Len(mine, 2)
		s.Equal(first, mine[0].ID)
		s.Equal(second, mine[1].ID)

		all, err := tx.ListRequests(RequestFilter{})
		s.NoError(err)
		s.Len(all, 3)
		return nil
	}))
}

func (s *MemoryStoreTestSuite) TestUnknownRequest() {
	s.NoError(s.store.View(func(tx Tx) error {
		_, err := tx.GetRequest(0)
		s.Equal(ErrRecordNotFound, err)
		_, err = tx.GetRequest(1)
		s.Equal(ErrRecordNotFound, err)
		return nil
	}))
}

func (s *MemoryStoreTestSuite) TestReviewIndexes() {
	id := s.seedRequest("alice")

	s.NoError(s.store.Transaction(func(tx Tx) error {
		first := &schema.Review{RequestID: id, Reviewer: "alice", Reviewed: "bob", Rating: 4}
		s.NoError(tx.AddReview(first))
		s.Equal(int64(1), first.ID)

		s.NoError(tx.AddReview(&schema.Review{RequestID: id, Reviewer: "bob", Reviewed: "alice", Rating: 5}))

		staged, err := tx.ReviewsByReviewed("bob")
		s.NoError(err)
		s.Len(staged, 1)
		return nil
	}))

	s.NoError(s.store.Transaction(func(tx Tx) error {
		return tx.AddReview(&schema.Review{RequestID: id, Reviewer: "alice", Reviewed: "bob", Rating: 2})
	}))

	s.NoError(s.store.View(func(tx Tx) error {
		byRequest, err := tx.ReviewsByRequest(id)
		s.NoError(err)
		s.Len(byRequest, 3)

		bob, err := tx.ReviewsByReviewed("bob")
		s.NoError(err)
		s.Len(bob, 2)
		s.Equal(4, bob[0].Rating)
		s.Equal(2, bob[1].Rating)
		s.Equal(int64(3), bob[1].ID)
		return nil
	}))
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
