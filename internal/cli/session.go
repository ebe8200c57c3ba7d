package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rustyeddy/smcjournal/journal"
	"github.com/rustyeddy/smcjournal/report"
	"github.com/rustyeddy/smcjournal/stats"
	"github.com/spf13/cobra"
)

var errDone = errors.New("session done")

// maxLineBytes bounds one answer; lessons can run well past bufio's 64 KiB default.
const maxLineBytes = 1 << 20

func newSessionCmd(rc *RootConfig) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log trades interactively for one session",
		Long: `Start a trading session and log trades through a prompt-per-field form.

A blank answer keeps the value shown in brackets, "-" clears it. Date, pair,
session and the structure notes carry over to the next trade. Enter "done" at
the date prompt (or send EOF) to end the session and print the report.

Nothing is saved: the journal lives only as long as the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(rc)
			p := &prompter{
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			p.in.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			if err := s.interact(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return s.report().Write(cmd.OutOrStdout(), rc.reportFormat(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "report format: text|org|csv (default from config)")

	return cmd
}

// session ties one journal store to the stats engine for the CLI.
type session struct {
	store *journal.Store
	eng   *stats.Engine
	now   func() time.Time
}

func newSession(rc *RootConfig) *session {
	return &session{
		store: journal.NewStore(
			journal.WithPolicy(rc.Config.Policy()),
			journal.WithLogger(rc.Log),
		),
		eng: stats.NewEngine(rc.Log),
		now: rc.now,
	}
}

func (s *session) submit(f journal.Form) error {
	rec, err := f.Record()
	if err != nil {
		return err
	}
	return s.store.RecordTrade(rec)
}

func (s *session) report() report.Session {
	return report.FromStore(s.store, s.eng, s.now())
}

func (s *session) interact(p *prompter) error {
	form := journal.NewForm()
	for {
		s.dashboard(p.out)

		err := s.fill(p, &form)
		if errors.Is(err, io.EOF) || errors.Is(err, errDone) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.submit(form)
		if errors.Is(err, journal.ErrJournalLocked) {
			// the form keeps its values, as the widget did
			fmt.Fprintf(p.out, "\n%s\n", journal.LockNotice)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, "\nTrade saved.")
		form.Clear()
	}
}

func (s *session) dashboard(w io.Writer) {
	snap := s.eng.Compute(s.store.Trades())
	fmt.Fprintf(w, "\n%s\n", snap)
	if s.store.Locked() {
		fmt.Fprintf(w, "!! %s\n", journal.LockBanner)
	}
	fmt.Fprintln(w, "\nNew Trade")
}

func (s *session) fill(p *prompter, f *journal.Form) error {
	var err error

	if f.Date, err = p.ask("Date", f.Date); err != nil {
		return err
	}
	if strings.EqualFold(f.Date, "done") {
		return errDone
	}
	if f.Pair, err = p.choose("Pair (EURUSD/GBPUSD/USDJPY)", f.Pair, func(v string) error {
		_, err := journal.ParsePair(v)
		return err
	}); err != nil {
		return err
	}
	if f.Session, err = p.choose("Session (London/New York)", f.Session, func(v string) error {
		_, err := journal.ParseSession(v)
		return err
	}); err != nil {
		return err
	}
	if f.Structure, err = p.ask("Structure", f.Structure); err != nil {
		return err
	}
	if f.Liquidity, err = p.ask("Liquidity", f.Liquidity); err != nil {
		return err
	}

	ind, err := p.choose("Inducement (y/n)", yesNo(f.Inducement), func(v string) error {
		_, err := parseYesNo(v)
		return err
	})
	if err != nil {
		return err
	}
	f.Inducement, _ = parseYesNo(ind)

	if f.RiskReward, err = p.ask("Risk:Reward (e.g. 2)", f.RiskReward); err != nil {
		return err
	}
	if f.Result, err = p.choose("Result (Win/Loss/BE)", f.Result, func(v string) error {
		_, err := journal.ParseResult(v)
		return err
	}); err != nil {
		return err
	}
	if f.Emotion, err = p.choose("Emotion (Calm/Confident/Fear/FOMO/Revenge)", f.Emotion, func(v string) error {
		_, err := journal.ParseEmotion(v)
		return err
	}); err != nil {
		return err
	}
	if f.Lesson, err = p.ask("Lesson", f.Lesson); err != nil {
		return err
	}
	return nil
}

// prompter reads one answer per line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask returns current on a blank line and "" for "-". It returns io.EOF once
// input runs out.
func (p *prompter) ask(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	line := strings.TrimSpace(p.in.Text())
	switch line {
	case "":
		return current, nil
	case "-":
		return "", nil
	}
	return line, nil
}

// choose asks until valid accepts the answer.
func (p *prompter) choose(label, current string, valid func(string) error) (string, error) {
	for {
		v, err := p.ask(label, current)
		if err != nil {
			return "", err
		}
		if err := valid(v); err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		return v, nil
	}
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return true, nil
	case "", "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n, got %q", s)
}
