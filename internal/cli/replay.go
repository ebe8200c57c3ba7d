package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rustyeddy/smcjournal/journal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newReplayCmd(rc *RootConfig) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a scripted session from a YAML list of trade forms",
		Long: `Feed a YAML list of trade forms through a fresh session, in order, and print
the report. Entries rejected by the loss lock are reported on stderr.

Each entry starts from the previous one after a save: date, pair, session,
structure, liquidity and inducement carry over, the rest is cleared. The first
entry starts from the form defaults (EURUSD, London).

Example entries.yaml:
  - date: 2024-03-15
    pair: EURUSD
    session: London
    rr: "2"
    result: Win
    emotion: Calm
    lesson: waited for the retest

Example:
  smcjournal replay -f entries.yaml --format org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read entries: %w", err)
			}

			forms, err := parseForms(data)
			if err != nil {
				return err
			}

			s := newSession(rc)
			for i, f := range forms {
				err := s.submit(f)
				if errors.Is(err, journal.ErrJournalLocked) {
					fmt.Fprintf(cmd.ErrOrStderr(), "entry %d: %s\n", i+1, journal.LockNotice)
					continue
				}
				if err != nil {
					return fmt.Errorf("entry %d: %w", i+1, err)
				}
			}
			return s.report().Write(cmd.OutOrStdout(), rc.reportFormat(format))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of trade forms, - for stdin (required)")
	cmd.Flags().StringVar(&format, "format", "", "report format: text|org|csv (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// parseForms decodes each entry over the cleared previous form, the way the
// interactive session carries fields from one trade to the next.
func parseForms(data []byte) ([]journal.Form, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parse entries: %w", err)
	}

	forms := make([]journal.Form, 0, len(nodes))
	prev := journal.NewForm()
	for i := range nodes {
		f := prev
		f.Clear()
		if err := nodes[i].Decode(&f); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if f.Pair == "" {
			f.Pair = string(journal.PairEURUSD)
		}
		if f.Session == "" {
			f.Session = string(journal.SessionLondon)
		}
		forms = append(forms, f)
		prev = f
	}
	return forms, nil
}
