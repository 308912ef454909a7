package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// recordGameRequest mirrors the POST /games body; empty fields take server defaults
type recordGameRequest struct {
	WinnerID     string   `json:"winner_id"`
	Date         string   `json:"date,omitempty"`
	Time         string   `json:"time,omitempty"`
	Place        string   `json:"place,omitempty"`
	GameType     string   `json:"game_type,omitempty"`
	Mood         string   `json:"mood,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Comment      string   `json:"comment,omitempty"`
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Recorded win commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameRecordCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameEditCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	var winner, place string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded games, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if winner != "" {
				query.Set("winner", winner)
			}
			if place != "" {
				query.Set("place", place)
			}

			var result []Game
			if err := client.Get(cmd.Context(), apiPath("games"), query, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Only games won by this player ID")
	cmd.Flags().StringVar(&place, "place", "", "Only games played at this place")

	return cmd
}

func newGameRecordCmd() *cobra.Command {
	var req recordGameRequest

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a win",
		Long: `Record a win. Badges are rolled by the server.

Date defaults to today, game type to belote and mood to epic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Post(cmd.Context(), apiPath("games"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.WinnerID, "winner", "", "Winner player ID (required)")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date as YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Time, "time", "", "Time of day as HH:MM")
	cmd.Flags().StringVar(&req.Place, "place", "", "Where the game was played")
	cmd.Flags().StringVar(&req.GameType, "type", "", "Game type")
	cmd.Flags().StringVar(&req.Mood, "mood", "", "Mood of the win")
	cmd.Flags().StringSliceVar(&req.Participants, "participant", nil, "Participant player ID (repeatable)")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "Free text comment")
	_ = cmd.MarkFlagRequired("winner")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get(cmd.Context(), apiPath("games", args[0]), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameEditCmd() *cobra.Command {
	var (
		winner, date, tod, place, gameType, mood, comment string
		participants, badges                               []string
		reroll                                             bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req := map[string]any{}
			for flag, field := range map[string]string{
				"winner":  "winner_id",
				"date":    "date",
				"time":    "time",
				"place":   "place",
				"type":    "game_type",
				"mood":    "mood",
				"comment": "comment",
			} {
				if flags.Changed(flag) {
					v, _ := flags.GetString(flag)
					req[field] = v
				}
			}
			if flags.Changed("participant") {
				req["participants"] = participants
			}
			if flags.Changed("badge") {
				req["badges"] = badges
			}
			if reroll {
				req["reroll"] = true
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to change")
			}

			var result Game
			if err := client.Patch(cmd.Context(), apiPath("games", args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "New winner player ID")
	cmd.Flags().StringVar(&date, "date", "", "New date as YYYY-MM-DD")
	cmd.Flags().StringVar(&tod, "time", "", "New time of day as HH:MM")
	cmd.Flags().StringVar(&place, "place", "", "New place")
	cmd.Flags().StringVar(&gameType, "type", "", "New game type")
	cmd.Flags().StringVar(&mood, "mood", "", "New mood")
	cmd.Flags().StringVar(&comment, "comment", "", "New comment")
	cmd.Flags().StringSliceVar(&participants, "participant", nil, "Replace participants (repeatable)")
	cmd.Flags().StringSliceVar(&badges, "badge", nil, "Replace badges (repeatable)")
	cmd.Flags().BoolVar(&reroll, "reroll", false, "Roll the badges again")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), apiPath("games", args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}
