package api

import (
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/helpledger/ledger"
	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/store"
)

type ServerTestSuite struct {
	suite.Suite
	key    *rsa.PrivateKey
	router *gin.Engine
}

func (s *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	viper.Set("server.apikey.metric", "metric-key")
	viper.Set("server.apikey.admin", "admin-key")
	viper.Set("server.version", "test")
	s.key = generateKey(s.T())
}

func (s *ServerTestSuite) SetupTest() {
	server := NewServer(ledger.New(store.NewMemoryStore()), nil, &s.key.PublicKey)
	s.router = server.setupRouter()
}

func (s *ServerTestSuite) do(identity, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(s.T(), s.key, identity, time.Now().Add(time.Hour)))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) account(identity string) schema.Account {
	w := s.do("someone", "GET", "/api/profiles/"+identity, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var a schema.Account
	decodeResult(s.T(), w, &a)
	return a
}

func (s *ServerTestSuite) TestRequestLifecycle() {
	w := s.do("alice", "POST", "/api/accounts", map[string]string{"name": "Alice", "location": "Paris"})
	s.Equal(http.StatusOK, w.Code)
	w = s.do("bob", "POST", "/api/accounts", map[string]string{"name": "Bob", "location": "Paris"})
	s.Equal(http.StatusOK, w.Code)

	w = s.do("alice", "POST", "/api/helps", map[string]interface{}{"title": "Ride", "location": "Paris", "help_type": 0})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(8), s.account("alice").Balance)

	w = s.do("alice", "PATCH", "/api/helps/1", nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do("bob", "PATCH", "/api/helps/1", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(11), s.account("bob").Balance)

	w = s.do("bob", "POST", "/api/helps/1/reviews", map[string]interface{}{"reviewed": "alice", "rating": 5})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do("alice", "POST", "/api/helps/1/complete", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do("bob", "POST", "/api/helps/1/reviews", map[string]interface{}{"reviewed": "alice", "rating": 5})
	s.Equal(http.StatusOK, w.Code)
	w = s.do("alice", "POST", "/api/helps/1/reviews", map[string]interface{}{"reviewed": "bob", "rating": 4})
	s.Equal(http.StatusOK, w.Code)

	s.Equal(100, s.account("alice").TrustScore)
	s.Equal(80, s.account("bob").TrustScore)

	w = s.do("bob", "GET", "/api/accounts/me/helps", nil)
	s.Equal(http.StatusOK, w.Code)
	var mine []schema.HelpRequest
	decodeResult(s.T(), w, &mine)
	s.Len(mine, 1)
	s.Equal(schema.HelpCompleted, mine[0].State)

	w = s.do("", "GET", "/api/stats", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"requests": 1, "open_requests": 0}`, w.Body.String())
}

func (s *ServerTestSuite) TestUnauthenticated() {
	w := s.do("", "GET", "/api/helps", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do("", "GET", "/api/costs", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestAccountMeRequiresRegistration() {
	w := s.do("carol", "GET", "/api/accounts/me", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do("carol", "POST", "/api/helps", map[string]interface{}{"title": "Bed", "location": "Rome", "help_type": 2})
	s.Equal(http.StatusOK, w.Code)

	w = s.do("carol", "GET", "/api/accounts/me", nil)
	s.Equal(http.StatusOK, w.Code)
	var a schema.Account
	decodeResult(s.T(), w, &a)
	s.Equal(int64(7), a.Balance)
	s.Equal("Rome", a.Location)
}

func (s *ServerTestSuite) TestJournalDisabled() {
	w := s.do("alice", "POST", "/api/accounts", map[string]string{"name": "Alice"})
	s.Equal(http.StatusOK, w.Code)

	w = s.do("alice", "GET", "/api/accounts/me/events", nil)
	s.Equal(http.StatusNotImplemented, w.Code)
}

func (s *ServerTestSuite) TestHealthz() {
	w := s.do("", "GET", "/healthz", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status": "OK", "version": "test"}`, w.Body.String())
}

func (s *ServerTestSuite) TestMetrics() {
	w := s.do("", "GET", "/metrics", nil)
	s.Equal(http.StatusForbidden, w.Code)

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Api-Token", "metric-key")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "helpledger_ledger_open_requests")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
