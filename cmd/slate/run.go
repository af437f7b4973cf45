package main

import (
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/slate/internal/app"
)

func newRunCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once and write the reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			svc, err := buildService(cmd.Context(), cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			res, err := svc.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case service.OutcomeNoRatings:
				fmt.Fprintln(out, "No completed games this season or last; nothing to rate.")
			case service.OutcomeNoGames:
				fmt.Fprintf(out, "\nNo upcoming games in the next %d days.\n", cfg.DaysAhead)
			}
			for _, path := range res.Files {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			return nil
		},
	}
}
