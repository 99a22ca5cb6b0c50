package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/bitmark-inc/helpledger/schema"
	"github.com/bitmark-inc/helpledger/store"
)

// accountBook owns account records
type accountBook struct {
	now func() time.Time
}

// register creates the account of identity. It fails when the identity is
// already known.
func (b accountBook) register(u *unit, identity, name, location string) (*schema.Account, error) {
	if _, err := u.tx.GetAccount(identity); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, identity)
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	return b.create(u, identity, name, location)
}

// ensure returns the account of identity, registering it with an empty
// name and defaultLocation when it does not exist yet
func (b accountBook) ensure(u *unit, identity, defaultLocation string) (*schema.Account, error) {
	a, err := u.tx.GetAccount(identity)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, err
	}

	return b.create(u, identity, "", defaultLocation)
}

func (b accountBook) create(u *unit, identity, name, location string) (*schema.Account, error) {
	a := schema.NewAccount(identity, name, location, b.now())
	if err := u.tx.CreateAccount(a); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, identity)
		}
		return nil, err
	}

	u.emit(schema.Event{
		Kind:     schema.EventAccountRegistered,
		Identity: identity,
	})
	return a, nil
}

func (b accountBook) get(tx store.Tx, identity string) (schema.Account, error) {
	a, err := tx.GetAccount(identity)
	if errors.Is(err, store.ErrRecordNotFound) {
		return schema.Account{Identity: identity}, nil
	}
	if err != nil {
		return schema.Account{}, err
	}
	return *a, nil
}

// update writes a with a fresh modification time
func (b accountBook) update(u *unit, a *schema.Account) error {
	a.UpdatedAt = b.now()
	return u.tx.UpdateAccount(a)
}
