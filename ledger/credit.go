package ledger

import (
	"fmt"

	"github.com/bitmark-inc/helpledger/metrics"
	"github.com/bitmark-inc/helpledger/schema"
)

const (
	DefaultPickupCost   int64 = 2
	DefaultTourCost     int64 = 5
	DefaultLodgingCost  int64 = 3
	DefaultHelperReward int64 = 1
)

// CostSchedule maps each help type to the credit it costs to post, plus
// the reward a helper receives on accepting. It is fixed once built.
type CostSchedule struct {
	costs  [3]int64
	reward int64
}

// DefaultCostSchedule returns the 2/5/3 schedule with a reward of 1
func DefaultCostSchedule() CostSchedule {
	return CostSchedule{
		costs:  [3]int64{DefaultPickupCost, DefaultTourCost, DefaultLodgingCost},
		reward: DefaultHelperReward,
	}
}

// NewCostSchedule builds a schedule from explicit values
func NewCostSchedule(pickup, tour, lodging, reward int64) (CostSchedule, error) {
	for _, v := range []int64{pickup, tour, lodging, reward} {
		if v < 0 {
			return CostSchedule{}, fmt.Errorf("negative amount %d in cost schedule", v)
		}
	}
	return CostSchedule{
		costs:  [3]int64{pickup, tour, lodging},
		reward: reward,
	}, nil
}

// CostFor returns the credit needed to post a request of type t
func (c CostSchedule) CostFor(t schema.HelpType) (int64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHelpType, int(t))
	}
	return c.costs[t], nil
}

// Reward is the credit paid to a helper when a request is matched
func (c CostSchedule) Reward() int64 {
	return c.reward
}

// Costs lists the cost of every help type
func (c CostSchedule) Costs() map[schema.HelpType]int64 {
	costs := make(map[schema.HelpType]int64, len(c.costs))
	for _, t := range schema.HelpTypes() {
		costs[t] = c.costs[t]
	}
	return costs
}

// creditLedger moves credit in and out of account balances
type creditLedger struct {
	schedule CostSchedule
}

func (c creditLedger) costFor(t schema.HelpType) (int64, error) {
	return c.schedule.CostFor(t)
}

// debit takes amount from the balance of identity. The balance is left
// untouched when it cannot cover the amount.
func (c creditLedger) debit(u *unit, identity string, amount int64) error {
	a, err := u.tx.GetAccount(identity)
	if err != nil {
		return fmt.Errorf("debit %s: %w", identity, err)
	}

	if a.Balance < amount {
		return fmt.Errorf("%w: balance %d, required %d", ErrInsufficientCredit, a.Balance, amount)
	}

	a.Balance -= amount
	if err := u.tx.UpdateAccount(a); err != nil {
		return err
	}

	u.moved(metrics.Debit, amount)
	return nil
}

// credit adds amount to the balance of identity
func (c creditLedger) credit(u *unit, identity string, amount int64) error {
	a, err := u.tx.GetAccount(identity)
	if err != nil {
		return fmt.Errorf("credit %s: %w", identity, err)
	}

	a.Balance += amount
	if err := u.tx.UpdateAccount(a); err != nil {
		return err
	}

	u.moved(metrics.Credit, amount)
	return nil
}
