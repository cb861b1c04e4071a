package domain

import "sort"

// HelperActivity maps a helper's directory identifier (their Slack ID) to
// the number of tickets they closed in a window. Helpers with no closures
// are absent, never present with a zero count.
type HelperActivity map[string]int64

// TotalTickets sums the ticket counts of every helper.
func (a HelperActivity) TotalTickets() int64 {
	var total int64
	for _, n := range a {
		total += n
	}
	return total
}

// PayoutResult maps each helper in a HelperActivity to their cookie reward
// at full precision.
type PayoutResult map[string]float64

// Total sums every reward without rounding, in helper ID order so the
// result is reproducible.
func (r PayoutResult) Total() float64 {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var total float64
	for _, id := range ids {
		total += r[id]
	}
	return total
}

// ResolvedIdentity is a helper's display identity from the user directory
type ResolvedIdentity struct {
	HelperID    string `json:"helper_id"`
	DisplayName string `json:"display_name"`
	ProfileURL  string `json:"profile_url"`
	DirectoryID int64  `json:"directory_id"`
	Avatar      string `json:"avatar,omitempty"`
	Cookies     *int64 `json:"cookies,omitempty"`
}
