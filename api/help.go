package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpledger/schema"
)

// helpID reads the request id from the path
func helpID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("helpID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	if id <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return 0, false
	}
	return id, true
}

// askForHelp is the API for asking help from others
func (s *Server) askForHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    string `json:"location"`
		HelpType    *int   `json:"help_type"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.HelpType == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.ledger.CreateRequest(requester, params.Title, params.Description, params.Location, schema.HelpType(*params.HelpType))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// openHelps lists the requests waiting for a helper
func (s *Server) openHelps(c *gin.Context) {
	requests, err := s.ledger.OpenRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

func (s *Server) helpDetail(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	req, err := s.ledger.GetRequest(id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// answerHelp is the API for answer a help
func (s *Server) answerHelp(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	req, err := s.ledger.AcceptRequest(id, c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// completeHelp is the API for either party to close a matched help
func (s *Server) completeHelp(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	req, err := s.ledger.CompleteRequest(id, c.GetString("requester"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}

// reviewHelp is the API for rating the other party of a completed help
func (s *Server) reviewHelp(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	var params struct {
		Reviewed string `json:"reviewed" binding:"required"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.ledger.SubmitReview(id, c.GetString("requester"), params.Reviewed, params.Rating, params.Comment)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": review})
}

func (s *Server) helpReviews(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	reviews, err := s.ledger.ReviewsForRequest(id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reviews})
}

// helpEvents lists the journal entries of a request. Only its parties may
// read them.
func (s *Server) helpEvents(c *gin.Context) {
	id, ok := helpID(c)
	if !ok {
		return
	}

	if s.journal == nil {
		abortWithEncoding(c, http.StatusNotImplemented, errorJournalNotEnabled)
		return
	}

	req, err := s.ledger.GetRequest(id)
	if shouldInterupt(err, c) {
		return
	}

	if !req.Involves(c.GetString("requester")) {
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestParty)
		return
	}

	entries, err := s.journal.EventsForRequest(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}

// getCosts shows the cost schedule of help requests
func (s *Server) getCosts(c *gin.Context) {
	schedule := s.ledger.Schedule()

	costs := make(map[string]int64)
	for helpType, cost := range schedule.Costs() {
		costs[helpType.String()] = cost
	}

	c.JSON(http.StatusOK, gin.H{
		"costs":           costs,
		"reward":          schedule.Reward(),
		"initial_balance": schema.InitialBalance,
	})
}

// getStats shows the request counters
func (s *Server) getStats(c *gin.Context) {
	total, err := s.ledger.RequestCount()
	if shouldInterupt(err, c) {
		return
	}

	open, err := s.ledger.OpenRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":      total,
		"open_requests": len(open),
	})
}
