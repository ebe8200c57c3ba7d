// Package journal records discretionary trades for a single trading session
// and enforces the consecutive-loss lock.
package journal

import "strings"

// Pair is a traded currency pair.
type Pair string

const (
	PairEURUSD Pair = "EURUSD"
	PairGBPUSD Pair = "GBPUSD"
	PairUSDJPY Pair = "USDJPY"
)

// Pairs lists the selectable pairs in display order.
var Pairs = []Pair{PairEURUSD, PairGBPUSD, PairUSDJPY}

// Session is the market session a trade was taken in.
type Session string

const (
	SessionLondon  Session = "London"
	SessionNewYork Session = "NewYork"
)

// Sessions lists the trading sessions in display order.
var Sessions = []Session{SessionLondon, SessionNewYork}

// Result is the outcome of a trade. ResultUnset is the zero value and is never
// counted as an outcome.
type Result string

const (
	ResultUnset Result = ""
	ResultWin   Result = "Win"
	ResultLoss  Result = "Loss"
	ResultBE    Result = "BE"
)

// Results lists the selectable results; Unset is not offered.
var Results = []Result{ResultWin, ResultLoss, ResultBE}

// Emotion is the trader's state of mind when the trade was taken.
type Emotion string

const (
	EmotionUnset     Emotion = ""
	EmotionCalm      Emotion = "Calm"
	EmotionConfident Emotion = "Confident"
	EmotionFear      Emotion = "Fear"
	EmotionFOMO      Emotion = "FOMO"
	EmotionRevenge   Emotion = "Revenge"
)

// Emotions lists the selectable emotions; Unset is not offered.
var Emotions = []Emotion{EmotionCalm, EmotionConfident, EmotionFear, EmotionFOMO, EmotionRevenge}

// Positive reports whether the emotion counts toward the psychology score.
func (e Emotion) Positive() bool {
	return e == EmotionCalm || e == EmotionConfident
}

// TradeRecord is a single journal entry. Records are values; the store hands out
// copies so stored history cannot be changed by callers.
type TradeRecord struct {
	ID         string  `json:"id" yaml:"id"`
	Date       string  `json:"date" yaml:"date"`
	Pair       Pair    `json:"pair" yaml:"pair"`
	Session    Session `json:"session" yaml:"session"`
	Structure  string  `json:"structure" yaml:"structure"`
	Liquidity  string  `json:"liquidity" yaml:"liquidity"`
	Inducement bool    `json:"inducement" yaml:"inducement"`
	RiskReward string  `json:"rr" yaml:"rr"`
	Result     Result  `json:"result" yaml:"result"`
	Emotion    Emotion `json:"emotion" yaml:"emotion"`
	Lesson     string  `json:"lesson" yaml:"lesson"`
}

// ParsePair accepts the pair with or without a separator, e.g. "EURUSD",
// "eur/usd" or "EUR_USD".
func ParsePair(s string) (Pair, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("/", "", "_", "", "-", "").Replace(norm)
	for _, p := range Pairs {
		if string(p) == norm {
			return p, nil
		}
	}
	return "", &FieldError{Field: "pair", Value: s}
}

// ParseSession accepts "London", "NewYork" and the form label "New York".
func ParseSession(s string) (Session, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for _, sess := range Sessions {
		if strings.EqualFold(string(sess), norm) {
			return sess, nil
		}
	}
	return "", &FieldError{Field: "session", Value: s}
}

// ParseResult returns ResultUnset for blank input.
func ParseResult(s string) (Result, error) {
	norm := strings.TrimSpace(s)
	if norm == "" {
		return ResultUnset, nil
	}
	for _, r := range Results {
		if strings.EqualFold(string(r), norm) {
			return r, nil
		}
	}
	return ResultUnset, &FieldError{Field: "result", Value: s}
}

// ParseEmotion returns EmotionUnset for blank input.
func ParseEmotion(s string) (Emotion, error) {
	norm := strings.TrimSpace(s)
	if norm == "" {
		return EmotionUnset, nil
	}
	for _, e := range Emotions {
		if strings.EqualFold(string(e), norm) {
			return e, nil
		}
	}
	return EmotionUnset, &FieldError{Field: "emotion", Value: s}
}

// UnmarshalText accepts only the listed pairs.
func (p *Pair) UnmarshalText(b []byte) error {
	v, err := ParsePair(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText accepts a session name or its label.
func (s *Session) UnmarshalText(b []byte) error {
	v, err := ParseSession(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalText accepts a listed result or empty for Unset.
func (r *Result) UnmarshalText(b []byte) error {
	v, err := ParseResult(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// UnmarshalText accepts a listed emotion or empty for Unset.
func (e *Emotion) UnmarshalText(b []byte) error {
	v, err := ParseEmotion(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Label is the human readable session name used by the entry form.
func (s Session) Label() string {
	if s == SessionNewYork {
		return "New York"
	}
	return string(s)
}
