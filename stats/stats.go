// Package stats derives the dashboard statistics from a journal's trades.
package stats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/smcjournal/journal"
	"github.com/shopspring/decimal"
)

// Snapshot is the aggregate view of a trade sequence.
type Snapshot struct {
	Total           int     `json:"total" yaml:"total"`
	Wins            int     `json:"wins" yaml:"wins"`
	Losses          int     `json:"losses" yaml:"losses"`
	WinRate         int     `json:"win_rate" yaml:"win_rate"`
	RMultipleTotal  float64 `json:"r_multiple_total" yaml:"r_multiple_total"`
	PsychologyScore int     `json:"psychology_score" yaml:"psychology_score"`
}

// Engine computes snapshots and logs parse diagnostics.
type Engine struct {
	log zerolog.Logger
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "stats").Logger()}
}

// Compute aggregates trades in a single pass. It never fails: a risk:reward
// that does not parse counts as 0.
func (e *Engine) Compute(trades []journal.TradeRecord) Snapshot {
	var (
		s        Snapshot
		r        = decimal.Zero
		positive int
		minusOne = decimal.NewFromInt(-1)
	)

	s.Total = len(trades)
	for _, t := range trades {
		switch t.Result {
		case journal.ResultWin:
			s.Wins++
			rr, ok := parseRiskReward(t.RiskReward)
			if !ok {
				e.log.Debug().
					Str("id", t.ID).
					Str("rr", t.RiskReward).
					Msg("unparseable risk:reward counted as 0")
			}
			r = r.Add(rr)
		case journal.ResultLoss:
			s.Losses++
			r = r.Add(minusOne)
		}
		if t.Emotion.Positive() {
			positive++
		}
	}

	s.WinRate = percent(s.Wins, s.Total)
	s.PsychologyScore = percent(positive, s.Total)
	s.RMultipleTotal = r.InexactFloat64()
	return s
}

// Compute is Engine.Compute without diagnostics.
func Compute(trades []journal.TradeRecord) Snapshot {
	e := Engine{log: zerolog.Nop()}
	return e.Compute(trades)
}

// ParseRiskReward reads the leading number of a risk:reward entry, so "2R"
// is 2 and "1:3" is 1. Input without a leading number yields zero, as do
// numbers too long or too far from 1 to be a real ratio.
func ParseRiskReward(s string) decimal.Decimal {
	d, _ := parseRiskReward(s)
	return d
}

var rrPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Limits keep decimal arithmetic in Compute bounded.
const (
	rrMaxLen      = 64
	rrMaxExponent = 64
)

func parseRiskReward(s string) (decimal.Decimal, bool) {
	num := rrPrefix.FindString(strings.TrimSpace(s))
	if num == "" || len(num) > rrMaxLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(num, "+"))
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > rrMaxExponent || exp < -rrMaxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// percent rounds half away from zero.
func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

// Tile is one dashboard tile.
type Tile struct {
	Title string
	Value string
}

// Tiles returns the dashboard tiles in display order.
func (s Snapshot) Tiles() []Tile {
	return []Tile{
		{Title: "Trades", Value: fmt.Sprintf("%d", s.Total)},
		{Title: "Win Rate", Value: fmt.Sprintf("%d%%", s.WinRate)},
		{Title: "R Multiple", Value: fmt.Sprintf("%.1f", s.RMultipleTotal)},
		{Title: "Psychology", Value: fmt.Sprintf("%d%%", s.PsychologyScore)},
	}
}

func (s Snapshot) String() string {
	parts := make([]string, 0, 4)
	for _, t := range s.Tiles() {
		parts = append(parts, t.Title+": "+t.Value)
	}
	return strings.Join(parts, " | ")
}
