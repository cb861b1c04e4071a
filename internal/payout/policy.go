package payout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/osse101/crimson/internal/domain"
)

// Policy decides how cookies are allocated across helpers.
// The two implementations, FixedRate and Pool, are the only valid modes.
type Policy interface {
	// Allocate returns a reward for every helper in activity.
	Allocate(activity domain.HelperActivity) (domain.PayoutResult, error)
	// Name identifies the mode in logs and reports.
	Name() string
	fmt.Stringer

	sealed()
}

// FixedRate pays every ticket the same number of cookies.
type FixedRate struct {
	Rate float64
}

// NewFixedRate validates the rate and returns the policy.
func NewFixedRate(rate float64) (FixedRate, error) {
	if !isPositive(rate) {
		return FixedRate{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(ErrMsgRateMustBePositive, rate))
	}
	return FixedRate{Rate: rate}, nil
}

// Allocate computes tickets * Rate per helper. An empty activity yields an
// empty result.
func (p FixedRate) Allocate(activity domain.HelperActivity) (domain.PayoutResult, error) {
	result := make(domain.PayoutResult, len(activity))
	for helperID, tickets := range activity {
		result[helperID] = float64(tickets) * p.Rate
	}
	return result, nil
}

func (p FixedRate) Name() string { return PolicyNameFixedRate }

func (p FixedRate) String() string {
	return fmt.Sprintf("%s (%s cookies per ticket)", PolicyNameFixedRate, strconv.FormatFloat(p.Rate, 'f', -1, 64))
}

func (FixedRate) sealed() {}

// Pool splits a fixed total in proportion to each helper's share of tickets.
type Pool struct {
	Total float64
}

// NewPool validates the pool size and returns the policy.
func NewPool(total float64) (Pool, error) {
	if !isPositive(total) {
		return Pool{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(ErrMsgPoolMustBePositive, total))
	}
	return Pool{Total: total}, nil
}

// Allocate computes tickets / totalTickets * Total per helper.
// Returns domain.ErrEmptyPoolDivision when no tickets were closed.
func (p Pool) Allocate(activity domain.HelperActivity) (domain.PayoutResult, error) {
	totalTickets := activity.TotalTickets()
	if totalTickets == 0 {
		return nil, fmt.Errorf("%w: %d helpers, pool of %s cookies",
			domain.ErrEmptyPoolDivision, len(activity), strconv.FormatFloat(p.Total, 'f', -1, 64))
	}

	result := make(domain.PayoutResult, len(activity))
	for helperID, tickets := range activity {
		result[helperID] = float64(tickets) / float64(totalTickets) * p.Total
	}
	return result, nil
}

func (p Pool) Name() string { return PolicyNamePool }

func (p Pool) String() string {
	return fmt.Sprintf("%s (%s cookies split by share of tickets)", PolicyNamePool, strconv.FormatFloat(p.Total, 'f', -1, 64))
}

func (Pool) sealed() {}

// SelectPolicy maps the optional --rate and --pool values onto a Policy.
// Exactly one must be set.
func SelectPolicy(rate, pool *float64) (Policy, error) {
	switch {
	case rate != nil && pool != nil:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBothModesSet)
	case rate != nil:
		p, err := NewFixedRate(*rate)
		if err != nil {
			return nil, err
		}
		return p, nil
	case pool != nil:
		p, err := NewPool(*pool)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoModeSet)
	}
}

// Allocate applies policy to activity. A nil policy is an input error.
func Allocate(activity domain.HelperActivity, policy Policy) (domain.PayoutResult, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoModeSet)
	}
	for helperID, tickets := range activity {
		if tickets < 0 {
			return nil, fmt.Errorf("%w: helper %s has negative ticket count %d", domain.ErrInvalidInput, helperID, tickets)
		}
	}
	return policy.Allocate(activity)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
