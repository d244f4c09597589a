package main

import (
	"fmt"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/analysis"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/dimensions"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/report"
	"github.com/spf13/cobra"
)

// scoreInput accepts either raw answers or previously computed scores.
type scoreInput struct {
	ParticipantName string                   `json:"participant_name"`
	Questions       []analysis.Question      `json:"questions"`
	Responses       analysis.Responses       `json:"responses"`
	Scores          []dimensions.ScoreRecord `json:"scores"`
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	var input, name string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Build a diagnostic report from answers or stored scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in scoreInput
			if err := readInput(input, &in); err != nil {
				return err
			}
			if name != "" {
				in.ParticipantName = name
			}

			builder := report.NewBuilder(root.logger(cmd), nil)

			var rep report.Report
			switch {
			case len(in.Scores) > 0:
				rep = builder.FromRecords(in.ParticipantName, in.Scores)
			case len(in.Questions) > 0:
				for id, v := range in.Responses {
					if v < 1 || v > 5 {
						return fmt.Errorf("response %q out of range: %d", id, v)
					}
				}
				rep = builder.FromResponses(in.ParticipantName, in.Questions, in.Responses)
			default:
				return fmt.Errorf("input has neither questions nor scores")
			}

			return writeJSON(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON input file, - for stdin")
	cmd.Flags().StringVarP(&name, "name", "n", "", "participant name, overrides the input file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
