package main

import (
	"fmt"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	apperrors "github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/privacy"
	"github.com/spf13/cobra"
)

type storeOptions struct {
	dataDir string
}

func (o *storeOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dataDir, "data-dir", "./data", "directory holding the assessment database")
}

func (o *storeOptions) open(root *rootOptions, cmd *cobra.Command, retentionDays int) (*privacy.Service, func(), error) {
	db, err := database.NewDB(o.dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	svc := privacy.NewService(database.NewRepository(db), root.logger(cmd), retentionDays)
	return svc, func() { apperrors.SafeClose(db, "database") }, nil
}

func newPurgeCmd(root *rootOptions) *cobra.Command {
	var (
		store storeOptions
		days  int
	)

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete stored assessments older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			svc, closeDB, err := store.open(root, cmd, days)
			if err != nil {
				return err
			}
			defer closeDB()

			deleted, err := svc.PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d assessment(s) older than %d day(s)\n", deleted, days)
			return nil
		},
	}

	store.bind(cmd)
	cmd.Flags().IntVar(&days, "days", 365, "retention window in days")
	return cmd
}

func newEraseCmd(root *rootOptions) *cobra.Command {
	var store storeOptions

	cmd := &cobra.Command{
		Use:   "erase PARTICIPANT",
		Short: "Delete every stored assessment of one participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := store.open(root, cmd, 0)
			if err != nil {
				return err
			}
			defer closeDB()

			deleted, err := svc.EraseParticipant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "erased %d assessment(s)\n", deleted)
			return nil
		},
	}

	store.bind(cmd)
	return cmd
}
