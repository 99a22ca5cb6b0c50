package ledger

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/store"
)

// requestRegistry owns help requests and drives their state machine:
//
//	OPEN --accept--> MATCHED --complete--> COMPLETED
//
// CANCELLED exists as a terminal state but nothing leads to it.
type requestRegistry struct {
	accounts accountBook
	credits  creditLedger
	now      func() time.Time
}

func (r requestRegistry) get(tx store.Tx, id int64) (*schema.HelpRequest, error) {
	req, err := tx.GetRequest(id)
	if err != nil {
		return nil, notFound(err, ErrRequestNotFound, "%d", id)
	}
	return req, nil
}

func (r requestRegistry) create(u *unit, requester, title, description, location string, helpType schema.HelpType) (*schema.HelpRequest, error) {
	cost, err := r.credits.costFor(helpType)
	if err != nil {
		return nil, err
	}

	if _, err := r.accounts.ensure(u, requester, location); err != nil {
		return nil, err
	}

	if err := r.credits.debit(u, requester, cost); err != nil {
		return nil, err
	}

	count, err := u.tx.RequestCount()
	if err != nil {
		return nil, err
	}

	req := &schema.HelpRequest{
		ID:          count + 1,
		Requester:   requester,
		Title:       title,
		Description: description,
		Location:    location,
		HelpType:    helpType,
		State:       schema.HelpOpen,
		CreatedAt:   r.now(),
	}
	if err := u.tx.CreateRequest(req); err != nil {
		return nil, err
	}

	a, err := u.tx.GetAccount(requester)
	if err != nil {
		return nil, err
	}
	a.TotalReceived++
	if err := r.accounts.update(u, a); err != nil {
		return nil, err
	}

	u.emit(schema.Event{
		Kind:      schema.EventRequestCreated,
		Identity:  requester,
		RequestID: req.ID,
	})
	return req, nil
}

func (r requestRegistry) accept(u *unit, id int64, helper string) (*schema.HelpRequest, error) {
	req, err := r.get(u.tx, id)
	if err != nil {
		return nil, err
	}

	if req.Requester == helper {
		return nil, fmt.Errorf("%w: request %d", ErrSelfHelpForbidden, id)
	}

	switch req.State {
	case schema.HelpOpen:
	case schema.HelpMatched, schema.HelpCompleted, schema.HelpCancelled:
		return nil, fmt.Errorf("%w: request %d is %s", ErrRequestNotOpen, id, req.State)
	default:
		return nil, fmt.Errorf("request %d has unknown state %q", id, req.State)
	}

	a, err := r.accounts.ensure(u, helper, req.Location)
	if err != nil {
		return nil, err
	}

	req.Helper = helper
	req.State = schema.HelpMatched
	if err := u.tx.UpdateRequest(req); err != nil {
		return nil, err
	}

	a.TotalHelped++
	if err := r.accounts.update(u, a); err != nil {
		return nil, err
	}

	if err := r.credits.credit(u, helper, r.credits.schedule.Reward()); err != nil {
		return nil, err
	}

	u.emit(schema.Event{
		Kind:         schema.EventRequestMatched,
		Identity:     helper,
		Counterparty: req.Requester,
		RequestID:    req.ID,
	})
	return req, nil
}

// complete closes a matched request. The helper was already paid when the
// request was matched, so no credit moves here.
func (r requestRegistry) complete(u *unit, id int64, caller string) (*schema.HelpRequest, error) {
	req, err := r.get(u.tx, id)
	if err != nil {
		return nil, err
	}

	if !req.Involves(caller) {
		return nil, fmt.Errorf("%w: request %d", ErrNotAuthorized, id)
	}

	switch req.State {
	case schema.HelpMatched:
	case schema.HelpOpen, schema.HelpCompleted, schema.HelpCancelled:
		return nil, fmt.Errorf("%w: request %d is %s", ErrRequestNotMatched, id, req.State)
	default:
		return nil, fmt.Errorf("request %d has unknown state %q", id, req.State)
	}

	req.State = schema.HelpCompleted
	if err := u.tx.UpdateRequest(req); err != nil {
		return nil, err
	}

	u.emit(schema.Event{
		Kind:      schema.EventRequestCompleted,
		Identity:  caller,
		RequestID: req.ID,
	})
	return req, nil
}
