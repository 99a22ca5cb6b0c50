package ledger

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/score"
)

// reviewBook owns reviews and keeps trust scores in step with them
type reviewBook struct {
	now func() time.Time
}

// submit records a review between the two parties of a completed request
// and recomputes the trust score of the reviewed identity from all of its
// ratings. A party may review the same request more than once.
func (b reviewBook) submit(u *unit, requestID int64, reviewer, reviewed string, rating int, comment string) (*schema.Review, error) {
	if rating < schema.MinRating || rating > schema.MaxRating {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}

	req, err := u.tx.GetRequest(requestID)
	if err != nil {
		return nil, notFound(err, ErrRequestNotFound, "%d", requestID)
	}

	switch req.State {
	case schema.HelpCompleted:
	case schema.HelpOpen, schema.HelpMatched, schema.HelpCancelled:
		return nil, fmt.Errorf("%w: request %d is %s", ErrRequestNotCompleted, requestID, req.State)
	default:
		return nil, fmt.Errorf("request %d has unknown state %q", requestID, req.State)
	}

	helper, _ := req.MatchedHelper()
	forward := reviewer == req.Requester && reviewed == helper
	backward := reviewer == helper && reviewed == req.Requester
	if !forward && !backward {
		return nil, fmt.Errorf("%w: request %d", ErrInvalidReviewPair, requestID)
	}

	review := &schema.Review{
		RequestID: requestID,
		Reviewer:  reviewer,
		Reviewed:  reviewed,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: b.now(),
	}
	if err := u.tx.AddReview(review); err != nil {
		return nil, err
	}

	if err := b.recomputeTrust(u, reviewed); err != nil {
		return nil, err
	}

	u.emit(schema.Event{
		Kind:         schema.EventReviewSubmitted,
		Identity:     reviewed,
		Counterparty: reviewer,
		RequestID:    requestID,
		Rating:       rating,
	})
	return review, nil
}

func (b reviewBook) recomputeTrust(u *unit, identity string) error {
	reviews, err := u.tx.ReviewsByReviewed(identity)
	if err != nil {
		return err
	}

	a, err := u.tx.GetAccount(identity)
	if err != nil {
		return fmt.Errorf("trust score of %s: %w", identity, err)
	}

	a.TrustScore = score.TrustScore(score.ReviewRatings(reviews))
	a.UpdatedAt = b.now()
	return u.tx.UpdateAccount(a)
}
