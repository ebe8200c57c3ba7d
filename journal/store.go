package journal

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/smcjournal/pkg/id"
)

// DefaultMaxConsecutiveLosses is the number of losses that locks the journal.
const DefaultMaxConsecutiveLosses = 2

// Policy controls when the journal locks.
type Policy struct {
	MaxConsecutiveLosses int `json:"max_consecutive_losses" yaml:"max_consecutive_losses"`
}

// DefaultPolicy locks after two consecutive losses.
func DefaultPolicy() Policy {
	return Policy{MaxConsecutiveLosses: DefaultMaxConsecutiveLosses}
}

// Limit is the effective loss limit; non-positive values mean the default.
func (p Policy) Limit() int {
	if p.MaxConsecutiveLosses <= 0 {
		return DefaultMaxConsecutiveLosses
	}
	return p.MaxConsecutiveLosses
}

// Store owns the trades of one session along with the loss counter and the
// lock. The lock is never released; a new session starts with a new Store.
//
// A Store is not safe for concurrent use.
type Store struct {
	policy Policy
	log    zerolog.Logger
	newID  func() string

	trades []TradeRecord
	losses int
	locked bool
}

// Option configures a Store.
type Option func(*Store)

// WithPolicy sets the loss-lock rule.
func WithPolicy(p Policy) Option {
	return func(s *Store) { s.policy = p }
}

// WithLogger sets the logger for accept, lock and reject events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l.With().Str("component", "journal").Logger() }
}

// WithIDFunc replaces the ULID generator used to key accepted trades.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore returns an unlocked, empty journal.
func NewStore(opts ...Option) *Store {
	s := &Store{
		policy: DefaultPolicy(),
		log:    zerolog.Nop(),
		newID:  id.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordTrade appends rec to the journal. While the journal is locked the trade
// is dropped and ErrJournalLocked is returned. A loss that reaches the limit is
// recorded before the lock takes effect.
func (s *Store) RecordTrade(rec TradeRecord) error {
	if s.locked {
		s.log.Warn().
			Str("pair", string(rec.Pair)).
			Str("result", string(rec.Result)).
			Int("losses", s.losses).
			Msg("trade rejected, journal locked")
		return ErrJournalLocked
	}

	if rec.ID == "" {
		rec.ID = s.newID()
	}
	s.trades = append(s.trades, rec)

	s.log.Debug().
		Str("id", rec.ID).
		Str("pair", string(rec.Pair)).
		Str("session", string(rec.Session)).
		Str("result", string(rec.Result)).
		Int("trades", len(s.trades)).
		Msg("trade recorded")

	if rec.Result != ResultLoss {
		return nil
	}

	s.losses++
	if s.losses >= s.policy.Limit() {
		s.locked = true
		s.log.Info().
			Int("losses", s.losses).
			Int("limit", s.policy.Limit()).
			Msg("loss limit reached, journal locked")
	}
	return nil
}

// Trades returns a copy of the recorded trades in insertion order.
func (s *Store) Trades() []TradeRecord {
	return slices.Clone(s.trades)
}

func (s *Store) Locked() bool { return s.locked }

func (s *Store) LossCount() int { return s.losses }

func (s *Store) Policy() Policy { return s.policy }
