package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "diagctl",
		Short: "Score and interpret IES diagnostics from the command line",
		Long: `diagctl runs the diagnostic pipeline offline.

Examples:
  # Build a full report from questions and answers
  diagctl score --input answers.json --name "Maria Silva"

  # Rebuild a report from stored dimension scores
  diagctl score --input scores.json

  # Score a DISC questionnaire
  diagctl disc --input disc.json

  # Check how dimension names resolve
  diagctl normalize "consciencia interior" "Resiliencia"

  # Apply the retention window to a server database
  diagctl purge --data-dir ./data --days 365

  # Erase one participant's stored assessments
  diagctl erase --data-dir ./data "Maria Silva"`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newScoreCmd(opts),
		newDISCCmd(),
		newNormalizeCmd(),
		newPurgeCmd(opts),
		newEraseCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *monitoring.Logger {
	return monitoring.NewLoggerWithWriter(cmd.ErrOrStderr(), o.logLevel)
}

func readInput(path string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
