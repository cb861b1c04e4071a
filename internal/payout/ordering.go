package payout

import (
	"sort"

	"github.com/osse101/crimson/internal/domain"
)

// Entry is one helper's line in the payout, before identity resolution.
type Entry struct {
	HelperID string
	Tickets  int64
	Reward   float64
}

// Entries joins activity and result into a slice in display order.
func Entries(activity domain.HelperActivity, result domain.PayoutResult) []Entry {
	entries := make([]Entry, 0, len(result))
	for helperID, reward := range result {
		entries = append(entries, Entry{
			HelperID: helperID,
			Tickets:  activity[helperID],
			Reward:   reward,
		})
	}
	SortEntries(entries)
	return entries
}

// SortEntries orders by reward descending, then helper ID ascending.
// Rewards compare at full precision.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Reward != entries[j].Reward {
			return entries[i].Reward > entries[j].Reward
		}
		return entries[i].HelperID < entries[j].HelperID
	})
}
