package ledger

import (
	"errors"
	"fmt"
)

// Every command failure wraps exactly one of these. None of them is
// transient: the command did not meet a precondition and changed nothing.
var (
	ErrAlreadyRegistered   = fmt.Errorf("account already registered")
	ErrInvalidHelpType     = fmt.Errorf("invalid help type")
	ErrInsufficientCredit  = fmt.Errorf("insufficient credit")
	ErrRequestNotFound     = fmt.Errorf("request not found")
	ErrRequestNotOpen      = fmt.Errorf("request is not open")
	ErrRequestNotMatched   = fmt.Errorf("request is not matched")
	ErrRequestNotCompleted = fmt.Errorf("request is not completed")
	ErrSelfHelpForbidden   = fmt.Errorf("requester cannot help themselves")
	ErrNotAuthorized       = fmt.Errorf("caller is neither requester nor helper")
	ErrInvalidRating       = fmt.Errorf("rating out of range")
	ErrInvalidReviewPair   = fmt.Errorf("reviewer and reviewed are not the parties of the request")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrAlreadyRegistered, "AlreadyRegistered"},
	{ErrInvalidHelpType, "InvalidHelpType"},
	{ErrInsufficientCredit, "InsufficientCredit"},
	{ErrRequestNotFound, "RequestNotFound"},
	{ErrRequestNotOpen, "RequestNotOpen"},
	{ErrRequestNotMatched, "RequestNotMatched"},
	{ErrRequestNotCompleted, "RequestNotCompleted"},
	{ErrSelfHelpForbidden, "SelfHelpForbidden"},
	{ErrNotAuthorized, "NotAuthorized"},
	{ErrInvalidRating, "InvalidRating"},
	{ErrInvalidReviewPair, "InvalidReviewPair"},
}

// ErrorKind names the failure kind of err. It returns "OK" for nil and
// "Internal" for errors that are not ledger failures, such as storage
// errors.
func ErrorKind(err error) string {
	if err == nil {
		return "OK"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}
