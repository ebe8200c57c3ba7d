package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := TradeRecord{
		ID:         "01HV0000000000000000000000",
		Date:       "2024-03-15",
		Pair:       PairEURUSD,
		Session:    SessionNewYork,
		Structure:  "BOS on M15",
		Liquidity:  "",
		Inducement: true,
		RiskReward: "2.5",
		Result:     ResultWin,
		Emotion:    EmotionConfident,
		Lesson:     "patience paid\nentry on OB",
	}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade: EURUSD New York (01HV0000)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01HV0000000000000000000000")
	assert.Contains(t, result, ":DATE: 2024-03-15")
	assert.Contains(t, result, ":PAIR: EURUSD")
	assert.Contains(t, result, ":SESSION: NewYork")
	assert.Contains(t, result, ":RR: 2.5")
	assert.Contains(t, result, ":RESULT: Win")
	assert.Contains(t, result, ":EMOTION: Confident")
	assert.Contains(t, result, ":INDUCEMENT: true")
	assert.Contains(t, result, ":END:")

	assert.Contains(t, result, "*** Structure\n- BOS on M15\n")
	assert.Contains(t, result, "*** Liquidity\n- \n")
	assert.Contains(t, result, "*** Lesson\n- patience paid\n- entry on OB\n")
}

func TestFormatTradeOrgUnsetChoices(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(TradeRecord{ID: "short", Pair: PairUSDJPY, Session: SessionLondon})

	assert.Contains(t, result, "** Trade: USDJPY London (short)")
	assert.Contains(t, result, ":RESULT: -")
	assert.Contains(t, result, ":EMOTION: -")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []TradeRecord{
		{ID: "A", Pair: PairEURUSD, Session: SessionLondon},
		{ID: "B", Pair: PairGBPUSD, Session: SessionLondon},
	}

	result := FormatTradesOrg(trades)
	assert.Equal(t, 2, strings.Count(result, ":PROPERTIES:"))
	assert.Contains(t, result, "\n\n\n** Trade: GBPUSD")
	assert.Empty(t, FormatTradesOrg(nil))
}
