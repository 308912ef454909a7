package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Leaderboard and overview commands",
	}

	cmd.AddCommand(newStatsViewCmd("leaderboard", "Show the full leaderboard"))
	cmd.AddCommand(newStatsViewCmd("podium", "Show the top three"))
	cmd.AddCommand(newStatsOverviewCmd())

	return cmd
}

func newStatsViewCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Standing
			if err := client.Get(cmd.Context(), apiPath(name), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newStatsOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show group totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Overview
			if err := client.Get(cmd.Context(), apiPath("overview"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
