package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminAccountEvents is an internal only api to read the journal of any
// identity
func (s *Server) adminAccountEvents(c *gin.Context) {
	s.identityEvents(c, c.Param("identity"))
}

func (s *Server) identityEvents(c *gin.Context, identity string) {
	if s.journal == nil {
		abortWithEncoding(c, http.StatusNotImplemented, errorJournalNotEnabled)
		return
	}

	entries, err := s.journal.EventsFor(c.Request.Context(), identity)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
