package journal

import "errors"

// Form holds the raw values of the trade entry form.
type Form struct {
	Date       string `json:"date" yaml:"date"`
	Pair       string `json:"pair" yaml:"pair"`
	Session    string `json:"session" yaml:"session"`
	Structure  string `json:"structure" yaml:"structure"`
	Liquidity  string `json:"liquidity" yaml:"liquidity"`
	Inducement bool   `json:"inducement" yaml:"inducement"`
	RiskReward string `json:"rr" yaml:"rr"`
	Result     string `json:"result" yaml:"result"`
	Emotion    string `json:"emotion" yaml:"emotion"`
	Lesson     string `json:"lesson" yaml:"lesson"`
}

// NewForm returns a form with the default pair and session selected.
func NewForm() Form {
	return Form{
		Pair:    string(PairEURUSD),
		Session: string(SessionLondon),
	}
}

// Record validates the choice fields and builds a TradeRecord. Free text
// fields are taken as-is; every invalid choice is reported.
func (f Form) Record() (TradeRecord, error) {
	pair, perr := ParsePair(f.Pair)
	sess, serr := ParseSession(f.Session)
	res, rerr := ParseResult(f.Result)
	emo, eerr := ParseEmotion(f.Emotion)
	if err := errors.Join(perr, serr, rerr, eerr); err != nil {
		return TradeRecord{}, err
	}

	return TradeRecord{
		Date:       f.Date,
		Pair:       pair,
		Session:    sess,
		Structure:  f.Structure,
		Liquidity:  f.Liquidity,
		Inducement: f.Inducement,
		RiskReward: f.RiskReward,
		Result:     res,
		Emotion:    emo,
		Lesson:     f.Lesson,
	}, nil
}

// Clear resets the per-trade fields after a save. Date, pair, session and the
// structure notes carry over to the next entry.
func (f *Form) Clear() {
	f.RiskReward = ""
	f.Result = ""
	f.Emotion = ""
	f.Lesson = ""
}
