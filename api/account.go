package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpledger/schema"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	identity := c.GetString("requester")

	var params struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.ledger.Register(identity, params.Name, params.Location)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query the account of the caller
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountHelps lists the requests the caller asked for or helped with
func (s *Server) accountHelps(c *gin.Context) {
	requests, err := s.ledger.RequestsInvolving(c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": requests,
	})
}

func (s *Server) accountReviews(c *gin.Context) {
	reviews, err := s.ledger.ReviewsForIdentity(c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": reviews,
	})
}

// accountEvents lists the journal entries of the caller
func (s *Server) accountEvents(c *gin.Context) {
	s.identityEvents(c, c.GetString("requester"))
}

// profileDetail is the API to look up another account. An unknown identity
// is answered with an unregistered snapshot.
func (s *Server) profileDetail(c *gin.Context) {
	account, err := s.ledger.GetAccount(c.Param("identity"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

func (s *Server) profileReviews(c *gin.Context) {
	reviews, err := s.ledger.ReviewsForIdentity(c.Param("identity"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": reviews,
	})
}
