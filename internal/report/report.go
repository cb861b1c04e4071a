package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/crimson/internal/domain"
)

// Line is a resolved helper with their payout, in display order.
type Line struct {
	Identity domain.ResolvedIdentity
	Tickets  int64
	Reward   float64
}

// Row is one rendered report line.
type Row struct {
	Rank        int     `json:"rank"`
	HelperID    string  `json:"helper_id"`
	DisplayName string  `json:"display_name"`
	ProfileURL  string  `json:"profile_url"`
	Reward      float64 `json:"reward"`
	ExactReward float64 `json:"exact_reward"`
	Tickets     int64   `json:"tickets_closed"`
}

// Report is the complete payout for one window.
type Report struct {
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Period       time.Duration `json:"-"`
	Policy       string        `json:"policy"`
	Rows         []Row         `json:"helpers"`
	TotalTickets int64         `json:"total_tickets_closed"`
	TotalReward  float64       `json:"total_reward"`
}

// Build assembles a report from lines that are already in display order.
// Totals are taken from the unrounded rewards.
func Build(window domain.TimeWindow, policy string, lines []Line) *Report {
	r := &Report{
		Start:  window.Start(),
		End:    window.End(),
		Period: window.Duration(),
		Policy: policy,
		Rows:   make([]Row, 0, len(lines)),
	}

	for i, line := range lines {
		r.Rows = append(r.Rows, Row{
			Rank:        i + 1,
			HelperID:    line.Identity.HelperID,
			DisplayName: line.Identity.DisplayName,
			ProfileURL:  line.Identity.ProfileURL,
			Reward:      RoundForDisplay(line.Reward),
			ExactReward: line.Reward,
			Tickets:     line.Tickets,
		})
		r.TotalTickets += line.Tickets
		r.TotalReward += line.Reward
	}

	return r
}

// RoundForDisplay reduces v to single precision through its shortest decimal
// form, so 12.000000000000002 displays as 12. Single precision carries 24
// significant bits: above 2^24 (16,777,216) displayed rewards lose whole
// cookies, e.g. 16,777,217 displays as 16,777,216. Totals and ExactReward
// are unaffected. Values outside the float32 range are returned unchanged.
func RoundForDisplay(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat32 {
		return v
	}
	return decimal.NewFromFloat32(float32(v)).InexactFloat64()
}
