package main

import (
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/disc"
	"github.com/spf13/cobra"
)

type discInput struct {
	Questions []disc.Question `json:"questions"`
	Responses map[string]int  `json:"responses"`
}

func newDISCCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "disc",
		Short: "Score a DISC questionnaire and derive the behavioral profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in discInput
			if err := readInput(input, &in); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), disc.CalculateScores(in.Questions, in.Responses))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON input file, - for stdin")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
