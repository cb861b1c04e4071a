package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/crimson/internal/domain"
)

func testWindow(t *testing.T) domain.TimeWindow {
	t.Helper()
	w, err := domain.ParseTimeWindow("2026-02-01T00:00:00Z", "2026-03-01T00:00:00Z")
	require.NoError(t, err)
	return w
}

func testLines() []Line {
	return []Line{
		{
			Identity: domain.ResolvedIdentity{HelperID: "UA", DisplayName: "Alice", ProfileURL: "https://flavortown.example/users/1", DirectoryID: 1},
			Tickets:  3,
			Reward:   30,
		},
		{
			Identity: domain.ResolvedIdentity{HelperID: "UB", DisplayName: "Bob", ProfileURL: "https://flavortown.example/users/2", DirectoryID: 2},
			Tickets:  1,
			Reward:   10.000000000000002,
		},
	}
}

func TestBuild(t *testing.T) {
	r := Build(testWindow(t), "pool (40 cookies split by share of tickets)", testLines())

	want := []Row{
		{Rank: 1, HelperID: "UA", DisplayName: "Alice", ProfileURL: "https://flavortown.example/users/1", Reward: 30, ExactReward: 30, Tickets: 3},
		{Rank: 2, HelperID: "UB", DisplayName: "Bob", ProfileURL: "https://flavortown.example/users/2", Reward: 10, ExactReward: 10.000000000000002, Tickets: 1},
	}
	if diff := cmp.Diff(want, r.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(4), r.TotalTickets)
	assert.Equal(t, 30+10.000000000000002, r.TotalReward, "totals use unrounded rewards")
	assert.Equal(t, 28*24*time.Hour, r.Period)
}

func TestBuild_ExactRewardBeyondSinglePrecision(t *testing.T) {
	lines := []Line{{
		Identity: domain.ResolvedIdentity{HelperID: "UA", DisplayName: "Alice"},
		Tickets:  1,
		Reward:   16777217,
	}}
	r := Build(testWindow(t), "pool", lines)

	require.Len(t, r.Rows, 1)
	assert.Equal(t, 16777216.0, r.Rows[0].Reward)
	assert.Equal(t, 16777217.0, r.Rows[0].ExactReward)
	assert.Equal(t, 16777217.0, r.TotalReward)
}

func TestBuild_Empty(t *testing.T) {
	r := Build(testWindow(t), "fixed-rate", nil)

	assert.Empty(t, r.Rows)
	assert.NotNil(t, r.Rows)
	assert.Equal(t, int64(0), r.TotalTickets)
	assert.Equal(t, 0.0, r.TotalReward)
}

func TestRoundForDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.000000000000002, 12},
		{7.5, 7.5},
		{2.5, 2.5},
		{40.0 / 3.0, 13.333333},
		{0, 0},
		// single precision: integers are exact only up to 2^24
		{16777216, 16777216},
		{16777217, 16777216},
		{1e39, 1e39},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundForDisplay(tt.in), "RoundForDisplay(%v)", tt.in)
	}
}

func TestWriteText(t *testing.T) {
	r := Build(testWindow(t), "pool (40 cookies split by share of tickets)", testLines())

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "Selecting leaderboard from Sun 1 Feb 2026 (@ 00:00) to Sun 1 Mar 2026 (@ 00:00) (Period: 28d)")
	assert.Contains(t, out, "Policy: pool (40 cookies split by share of tickets)")
	assert.Contains(t, out, "Total tickets closed: 4")
	assert.Contains(t, out, "Total cookies distributed: 40\n")
	assert.NotContains(t, out, "10.000000000000002")

	alice := bytes.Index(buf.Bytes(), []byte("Alice"))
	bob := bytes.Index(buf.Bytes(), []byte("Bob"))
	require.True(t, alice >= 0 && bob >= 0)
	assert.Less(t, alice, bob, "rows keep display order")
}

func TestWriteText_Empty(t *testing.T) {
	r := Build(testWindow(t), "fixed-rate (2.5 cookies per ticket)", nil)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	assert.Contains(t, buf.String(), "No helper closed a ticket in this window.")
	assert.Contains(t, buf.String(), "Total cookies distributed: 0")
}

func TestWriteText_GroupsLargeNumbers(t *testing.T) {
	lines := []Line{{
		Identity: domain.ResolvedIdentity{HelperID: "UA", DisplayName: "Alice"},
		Tickets:  12345,
		Reward:   100,
	}}
	r := Build(testWindow(t), "pool", lines)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), "Total tickets closed: 12,345")

	lines[0].Reward = 1234567.5
	r = Build(testWindow(t), "pool", lines)

	buf.Reset()
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), "1,234,567.5")
	assert.Contains(t, buf.String(), "Total cookies distributed: 1,234,567.5\n")
}

func TestFormatCookies(t *testing.T) {
	p := message.NewPrinter(language.English)

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7.5, "7.5"},
		{1000, "1,000"},
		{13.333333, "13.333333"},
		{-2500.25, "-2,500.25"},
		{-0.5, "-0.5"},
		{1e20, "100000000000000000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCookies(p, tt.in), "formatCookies(%v)", tt.in)
	}
}

func TestWriteJSON(t *testing.T) {
	r := Build(testWindow(t), "pool", testLines())

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "28d", decoded["period"])
	assert.Equal(t, "pool", decoded["policy"])
	assert.Equal(t, float64(4), decoded["total_tickets_closed"])

	helpers, ok := decoded["helpers"].([]interface{})
	require.True(t, ok)
	require.Len(t, helpers, 2)
	first := helpers[0].(map[string]interface{})
	assert.Equal(t, "Alice", first["display_name"])
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "28d", FormatPeriod(28*24*time.Hour))
	assert.Equal(t, "1d 12h 30m", FormatPeriod(36*time.Hour+30*time.Minute))
	assert.Equal(t, "45s", FormatPeriod(45*time.Second))
	assert.Equal(t, "0s", FormatPeriod(0))
	assert.Equal(t, "500ms", FormatPeriod(500*time.Millisecond))
}
