package api

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpledger/ledger"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",

		1100: ledger.ErrAlreadyRegistered.Error(),
		1101: "account not found",

		1200: ledger.ErrRequestNotFound.Error(),
		1201: ledger.ErrInvalidHelpType.Error(),
		1202: ledger.ErrInsufficientCredit.Error(),
		1203: ledger.ErrRequestNotOpen.Error(),
		1204: ledger.ErrRequestNotMatched.Error(),
		1205: ledger.ErrSelfHelpForbidden.Error(),
		1206: ledger.ErrNotAuthorized.Error(),

		1300: ledger.ErrRequestNotCompleted.Error(),
		1301: ledger.ErrInvalidRating.Error(),
		1302: ledger.ErrInvalidReviewPair.Error(),

		1400: "event journal is not enabled",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters = errorJSON(1010)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotExist     = errorJSON(1200)
	errorInvalidHelpType     = errorJSON(1201)
	errorInsufficientCredit  = errorJSON(1202)
	errorRequestNotOpen      = errorJSON(1203)
	errorRequestNotMatched   = errorJSON(1204)
	errorSelfHelpForbidden   = errorJSON(1205)
	errorNotRequestParty     = errorJSON(1206)
	errorRequestNotCompleted = errorJSON(1300)
	errorInvalidRating       = errorJSON(1301)
	errorInvalidReviewPair   = errorJSON(1302)
	errorJournalNotEnabled   = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var ledgerErrors = []struct {
	err      error
	status   int
	response ErrorResponse
}{
	{ledger.ErrAlreadyRegistered, http.StatusForbidden, errorAccountTaken},
	{ledger.ErrInvalidHelpType, http.StatusBadRequest, errorInvalidHelpType},
	{ledger.ErrInsufficientCredit, http.StatusBadRequest, errorInsufficientCredit},
	{ledger.ErrRequestNotFound, http.StatusNotFound, errorRequestNotExist},
	{ledger.ErrRequestNotOpen, http.StatusConflict, errorRequestNotOpen},
	{ledger.ErrRequestNotMatched, http.StatusConflict, errorRequestNotMatched},
	{ledger.ErrRequestNotCompleted, http.StatusConflict, errorRequestNotCompleted},
	{ledger.ErrSelfHelpForbidden, http.StatusForbidden, errorSelfHelpForbidden},
	{ledger.ErrNotAuthorized, http.StatusForbidden, errorNotRequestParty},
	{ledger.ErrInvalidRating, http.StatusBadRequest, errorInvalidRating},
	{ledger.ErrInvalidReviewPair, http.StatusForbidden, errorInvalidReviewPair},
}

// abortWithLedgerError responds with the code of a ledger failure. Any
// other error is an internal one and is reported to sentry.
func abortWithLedgerError(c *gin.Context, err error) {
	for _, e := range ledgerErrors {
		if errors.Is(err, e.err) {
			abortWithEncoding(c, e.status, e.response, err)
			return
		}
	}

	log.WithError(err).Error("internal error")
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
