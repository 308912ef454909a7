package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerShowCmd())
	cmd.AddCommand(newPlayerEditCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerProfileCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player
			if err := client.Get(cmd.Context(), apiPath("players"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var name, emoji, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":        name,
				"emoji":       emoji,
				"description": description,
			}
			var result Player
			if err := client.Post(cmd.Context(), apiPath("players"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Avatar emoji")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get(cmd.Context(), apiPath("players", args[0]), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerEditCmd() *cobra.Command {
	var name, emoji, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("emoji") {
				req["emoji"] = emoji
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to change: pass --name, --emoji or --description")
			}

			var result Player
			if err := client.Patch(cmd.Context(), apiPath("players", args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&emoji, "emoji", "", "New avatar emoji")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), apiPath("players", args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Deleted player %s", args[0]))
			return nil
		},
	}
}

func newPlayerProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <id>",
		Short: "Show a player's profile, title and achievements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile
			if err := client.Get(cmd.Context(), apiPath("players", args[0], "profile"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
