package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/crimson/internal/domain"
)

// Column headers for the text report
const (
	headerRank    = "#"
	headerHelper  = "HELPER"
	headerProfile = "PROFILE"
	headerCookies = "COOKIES"
	headerTickets = "TICKETS"
)

// WriteText renders the report as an aligned console table.
func (r *Report) WriteText(w io.Writer) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Selecting leaderboard from %s to %s (Period: %s)\n",
		r.Start.Format(domain.TimeWindowLayout), r.End.Format(domain.TimeWindowLayout), FormatPeriod(r.Period)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Policy: %s\n\n", r.Policy); err != nil {
		return err
	}

	if len(r.Rows) == 0 {
		if _, err := fmt.Fprintln(w, "No helper closed a ticket in this window."); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", headerRank, headerHelper, headerProfile, headerCookies, headerTickets)
		for _, row := range r.Rows {
			p.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
				row.Rank, row.DisplayName, row.ProfileURL, formatCookies(p, row.Reward), row.Tickets)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := p.Fprintf(w, "\nTotal tickets closed: %d\nTotal cookies distributed: %s\n",
		r.TotalTickets, formatCookies(p, RoundForDisplay(r.TotalReward)))
	return err
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	type alias Report
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*alias
		Period string `json:"period"`
	}{
		alias:  (*alias)(r),
		Period: FormatPeriod(r.Period),
	})
}

// FormatPeriod renders a duration as days, hours, minutes and seconds,
// skipping zero parts: 672h becomes "28d", 36h30m becomes "1d 12h 30m".
func FormatPeriod(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	units := []struct {
		size   time.Duration
		suffix string
	}{
		{24 * time.Hour, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	}

	var parts []string
	for _, u := range units {
		if n := d / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			d -= n * u.size
		}
	}
	if len(parts) == 0 {
		return d.String()
	}
	return strings.Join(parts, " ")
}

// formatCookies renders v with its shortest decimal fraction and the
// printer's digit grouping on the whole part: 1234567.5 becomes "1,234,567.5".
func formatCookies(p *message.Printer, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	d := decimal.NewFromFloat(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole := d.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return sign + d.String()
	}

	out := sign + p.Sprintf("%d", whole.IntPart())
	if _, frac, ok := strings.Cut(d.String(), "."); ok {
		out += "." + frac
	}
	return out
}
