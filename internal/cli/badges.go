package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Badge catalog commands",
	}

	cmd.AddCommand(newBadgesListCmd())
	cmd.AddCommand(newBadgesShowCmd())
	cmd.AddCommand(newBadgesRollCmd())

	return cmd
}

func newBadgesListCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if category != "" {
				query.Set("category", category)
			}
			if search != "" {
				query.Set("q", search)
			}

			var result []Badge
			if err := client.Get(cmd.Context(), apiPath("badges"), query, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only badges in this category")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Case-insensitive search on name and description")

	return cmd
}

func newBadgesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <value>",
		Short: "Show a catalog badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Badge
			if err := client.Get(cmd.Context(), apiPath("badges", args[0]), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newBadgesRollCmd() *cobra.Command {
	var winner, mood, tod string

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Preview the badges a win would get, without recording it",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"winner_id": winner,
				"mood":      mood,
				"time":      tod,
			}
			var result RollResult
			if err := client.Post(cmd.Context(), apiPath("badges", "roll"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result.Badges)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winner player ID (required)")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood of the win")
	cmd.Flags().StringVar(&tod, "time", "", "Time of day as HH:MM")
	_ = cmd.MarkFlagRequired("winner")

	return cmd
}
