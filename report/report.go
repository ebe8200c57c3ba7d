// Package report renders the end-of-session summary of a journal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/rustyeddy/smcjournal/journal"
	"github.com/rustyeddy/smcjournal/stats"
)

// Session is everything the dashboard shows for one journal session.
type Session struct {
	Created   time.Time
	Trades    []journal.TradeRecord
	Stats     stats.Snapshot
	Locked    bool
	LossCount int
	LossLimit int
}

// FromStore snapshots a store and computes its statistics with eng.
func FromStore(s *journal.Store, eng *stats.Engine, now time.Time) Session {
	trades := s.Trades()
	return Session{
		Created:   now,
		Trades:    trades,
		Stats:     eng.Compute(trades),
		Locked:    s.Locked(),
		LossCount: s.LossCount(),
		LossLimit: s.Policy().Limit(),
	}
}

// WriteText writes the stat tiles, the lock banner and the trade history.
func (r Session) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString("SMC Trading Journal\n")
	for _, t := range r.Stats.Tiles() {
		fmt.Fprintf(&b, "  %-11s %s\n", t.Title+":", t.Value)
	}
	if r.Locked {
		fmt.Fprintf(&b, "\n!! %s\n", journal.LockBanner)
	}
	b.WriteString("\nJournal History\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return journal.WriteHistory(w, r.Trades)
}

var sessionOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"tradeOrg":   journal.FormatTradeOrg,
	"lockBanner": func() string { return journal.LockBanner },
}

var sessionOrg = template.Must(template.New("session").Funcs(sessionOrgFuncs).Parse(SessionOrgTemplate))

// WriteOrg renders the session as an Org-mode document.
func (r Session) WriteOrg(w io.Writer) error {
	return sessionOrg.Execute(w, r)
}

const SessionOrgTemplate = `* SESSION: SMC Trading Journal [{{(orTime .Created).Format "2006-01-02 Mon"}}]
:PROPERTIES:
:TRADES:      {{.Stats.Total}}
:WINS:        {{.Stats.Wins}}
:LOSSES:      {{.Stats.Losses}}
:WIN_RATE:    {{.Stats.WinRate}}
:R_MULTIPLE:  {{printf "%.1f" .Stats.RMultipleTotal}}
:PSYCHOLOGY:  {{.Stats.PsychologyScore}}
:LOSS_COUNT:  {{.LossCount}}
:LOSS_LIMIT:  {{.LossLimit}}
:LOCKED:      {{.Locked}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:
{{- if .Locked }}

#+begin_warning
{{ lockBanner }}
#+end_warning
{{- end }}

** Summary
| Outcome    | Count |
|------------+-------|
| Wins       | {{.Stats.Wins}} |
| Losses     | {{.Stats.Losses}} |
| Total      | {{.Stats.Total}} |
| Win Rate   | {{.Stats.WinRate}}% |
| R Multiple | {{printf "%.1f" .Stats.RMultipleTotal}} |
| Psychology | {{.Stats.PsychologyScore}}% |
{{- range .Trades }}

{{ tradeOrg . }}
{{- end }}
`

// WriteCSV exports the session's trades.
func (r Session) WriteCSV(w io.Writer) error {
	return journal.WriteCSV(w, r.Trades)
}

// Report formats.
const (
	FormatText = "text"
	FormatOrg  = "org"
	FormatCSV  = "csv"
)

// Write renders the session in the named format.
func (r Session) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatOrg:
		return r.WriteOrg(w)
	case FormatCSV:
		return r.WriteCSV(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
