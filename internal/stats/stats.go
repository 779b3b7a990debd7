// Package stats derives sales and cost analytics from a ledger snapshot.
// Every function is pure: the snapshot, the date range and the reference
// "now" all arrive as parameters, and nothing is cached between calls.
package stats

import (
	"sort"
	"time"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
)

// Range is an inclusive [Start, End] date filter (YYYY-MM-DD). The zero
// value means "today" relative to the reference time passed alongside it.
// A record on End at 23:59:59 is in range; End+1 at 00:00:00 is not.
type Range struct {
	Start string
	End   string
}

const rankSize = 3

type (
	// RankEntry is one name in a top/bottom ranking. Percent is the share of
	// the total grouped count, kept at full precision; rounding is the
	// presenter's job.
	RankEntry struct {
		Name    string
		Count   int
		Percent float64
	}

	// DatePoint is one calendar date in a series with the money summed on it.
	DatePoint struct {
		Date  string
		Total float64
	}

	// Summary is the full analytics result over a filtered order snapshot.
	// An empty filtered set yields a well-defined zero summary: totals of
	// zero, empty rankings, all 24 hour buckets present.
	Summary struct {
		Count          int
		Total          float64
		Average        float64
		AvgUnitValue   float64
		TopDishes      []RankEntry
		BottomDishes   []RankEntry
		TopClients     []RankEntry
		PaymentMethods map[core.PaymentMethod]int
		DailySeries    []DatePoint
		HourHistogram  [24]int
	}

	// Financials is the expenses-side aggregate for the same range.
	Financials struct {
		Count       int
		Total       float64
		DailySeries []DatePoint
	}

	// CloseOut combines both ledgers queried over the same range. The
	// engine itself is single-ledger; callers compose this from one
	// GetStats and one GetFinancials call.
	CloseOut struct {
		Income   float64
		Expenses float64
		Net      float64
	}
)

// GetStats computes the summary of orders inside the range.
func GetStats(orders []core.Order, r Range, now time.Time) Summary {
	start, end := r.resolve(now)

	s := Summary{PaymentMethods: map[core.PaymentMethod]int{}}
	var (
		quantitySum float64
		dishes      = newCounter()
		clients     = newCounter()
		daily       = map[string]float64{}
	)
	for _, o := range orders {
		date := o.Timestamp.Date()
		if date < start || date > end {
			continue
		}
		s.Count++
		s.Total += o.Subtotal
		quantitySum += float64(o.Quantity)
		dishes.add(o.Dish)
		clients.add(o.Client)
		s.PaymentMethods[o.PaymentMethod]++
		daily[date] += o.Subtotal
		if h, ok := o.Timestamp.Hour(); ok {
			s.HourHistogram[h]++
		}
	}

	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	if quantitySum > 0 {
		s.AvgUnitValue = s.Total / quantitySum
	}
	s.TopDishes = dishes.top(rankSize)
	s.BottomDishes = dishes.bottom(rankSize)
	s.TopClients = clients.top(rankSize)
	s.DailySeries = seriesAscending(daily)
	return s
}

// GetFinancials computes the expense totals and per-date series inside the
// range.
func GetFinancials(expenses []core.Expense, r Range, now time.Time) Financials {
	start, end := r.resolve(now)

	f := Financials{}
	daily := map[string]float64{}
	for _, e := range expenses {
		date := e.Timestamp.Date()
		if date < start || date > end {
			continue
		}
		f.Count++
		f.Total += e.Total
		daily[date] += e.Total
	}
	f.DailySeries = seriesAscending(daily)
	return f
}

// NewCloseOut composes the cross-ledger financial summary.
func NewCloseOut(s Summary, f Financials) CloseOut {
	return CloseOut{Income: s.Total, Expenses: f.Total, Net: s.Total - f.Total}
}

// Profitable reports the presentation sign flag; it flips at exactly 0.00
// after two-decimal rounding.
func (c CloseOut) Profitable() bool {
	return core.Round2(c.Net) >= 0
}

// In reports whether a YYYY-MM-DD date falls inside the range resolved
// against now.
func (r Range) In(date string, now time.Time) bool {
	start, end := r.resolve(now)
	return date >= start && date <= end
}

// resolve turns the optional range into concrete bounds. Both empty means
// "today"; a single open side stays unbounded.
func (r Range) resolve(now time.Time) (string, string) {
	start, end := r.Start, r.End
	if start == "" && end == "" {
		today := now.Format(core.DateLayout)
		return today, today
	}
	if start == "" {
		start = "0000-00-00"
	}
	if end == "" {
		end = "9999-12-31"
	}
	return start, end
}

// counter groups by name keeping first-seen order, which is also the tie
// order of the rankings.
type counter struct {
	counts map[string]int
	seen   []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.seen = append(c.seen, name)
	}
	c.counts[name]++
}

func (c *counter) ranked() []RankEntry {
	total := 0
	for _, n := range c.seen {
		total += c.counts[n]
	}
	out := make([]RankEntry, 0, len(c.seen))
	for _, n := range c.seen {
		cnt := c.counts[n]
		out = append(out, RankEntry{
			Name:    n,
			Count:   cnt,
			Percent: float64(cnt) / float64(total) * 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func (c *counter) top(n int) []RankEntry {
	ranked := c.ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// bottom mirrors top: the full descending ranking reversed, so among tied
// counts the later-seen name comes first.
func (c *counter) bottom(n int) []RankEntry {
	ranked := c.ranked()
	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func seriesAscending(daily map[string]float64) []DatePoint {
	if len(daily) == 0 {
		return nil
	}
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	out := make([]DatePoint, len(dates))
	for i, d := range dates {
		out[i] = DatePoint{Date: d, Total: daily[d]}
	}
	return out
}
