package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/helpledger/api/mocks"
	"github.com/bitmark-inc/helpledger/ledger"
	"github.com/bitmark-inc/helpledger/schema"
)

func TestAccountRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedgerCore(ctl)
	s := Server{ledger: l}

	gomock.InOrder(
		l.EXPECT().Register("alice", "Alice", "Paris").Return(&schema.Account{
			Identity:   "alice",
			Name:       "Alice",
			Location:   "Paris",
			Balance:    schema.InitialBalance,
			TrustScore: schema.InitialTrustScore,
			Exists:     true,
		}, nil),
		l.EXPECT().Register("alice", "Alice", "Paris").Return(nil, ledger.ErrAlreadyRegistered),
	)

	router := testRouter("alice")
	router.POST("/accounts", s.accountRegister)

	body := map[string]string{"name": "Alice", "location": "Paris"}
	w := serve(router, "POST", "/accounts", body)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var a schema.Account
	decodeResult(t, w, &a)
	assert.Equal(t, int64(10), a.Balance)
	assert.Equal(t, 50, a.TrustScore)
	assert.True(t, a.Exists)

	w = serve(router, "POST", "/accounts", body)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1100), decodeError(t, w).Code)
}

func TestAccountDetail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedgerCore(ctl)
	s := Server{ledger: l}

	l.EXPECT().GetAccount("alice").Return(schema.Account{
		Identity: "alice",
		Balance:  8,
		Exists:   true,
	}, nil).Times(1)
	l.EXPECT().GetAccount("nobody").Return(schema.Account{Identity: "nobody"}, nil).Times(1)

	router := testRouter("alice")
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/me", s.accountDetail)

	w := serve(router, "GET", "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var a schema.Account
	decodeResult(t, w, &a)
	assert.Equal(t, int64(8), a.Balance)

	router = testRouter("nobody")
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/me", s.accountDetail)

	w = serve(router, "GET", "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, int64(1101), decodeError(t, w).Code)
}

func TestProfileDetailUnknownIdentity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedgerCore(ctl)
	s := Server{ledger: l}

	l.EXPECT().GetAccount("carol").Return(schema.Account{Identity: "carol"}, nil).Times(1)

	router := testRouter("alice")
	router.GET("/profiles/:identity", s.profileDetail)

	w := serve(router, "GET", "/profiles/carol", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var a schema.Account
	decodeResult(t, w, &a)
	assert.Equal(t, "carol", a.Identity)
	assert.False(t, a.Exists)
}

func TestAccountHelpsStorageFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedgerCore(ctl)
	s := Server{ledger: l}

	l.EXPECT().RequestsInvolving("alice").Return(nil, errors.New("pq: connection refused")).Times(1)

	router := testRouter("alice")
	router.GET("/me/helps", s.accountHelps)

	w := serve(router, "GET", "/me/helps", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(999), decodeError(t, w).Code)
}
