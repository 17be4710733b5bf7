package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage daily quests",
	}
	cmd.AddCommand(
		newQuestListCmd(),
		newQuestAddCmd(),
		newQuestDoneCmd(),
		newQuestDeleteCmd(),
		newQuestResetCmd(),
		newQuestSuggestCmd(),
	)
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests, optionally filtered by title",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := a.service.SearchQuests(ctx, query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(quests) == 0 {
				fmt.Fprintln(out, muted.Render("no quests"))
				return nil
			}
			for _, q := range quests {
				check := "[ ]"
				if q.IsCompleted {
					check = "[x]"
				}
				fmt.Fprintf(out, "%s %s %s\n", muted.Render(shortID(q.ID)), check, q.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "find", "f", "", "Case-insensitive title filter")
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest to the top of the list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := a.service.AddQuest(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", shortID(q.ID), q.Title)
			return nil
		},
	}
}

func newQuestDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id-prefix>",
		Short: "Toggle a quest's completion and update the streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := a.service.ResolveQuest(ctx, args[0])
			if err != nil {
				return err
			}
			updated, _, err := a.service.ToggleQuest(ctx, q.ID)
			if err != nil {
				return err
			}
			state := "reopened"
			if updated.IsCompleted {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, updated.Title)
			return nil
		},
	}
}

func newQuestDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-prefix>",
		Short: "Delete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := a.service.ResolveQuest(ctx, args[0])
			if err != nil {
				return err
			}
			if _, err := a.service.DeleteQuest(ctx, q.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", q.Title)
			return nil
		},
	}
}

func newQuestResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new day: mark every quest incomplete",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.service.ResetDailyQuests(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all quests reset")
			return nil
		},
	}
}

func newQuestSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [mood]",
		Short: "Add the quest suggested for a mood, or list suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range a.service.QuestSuggestions() {
					fmt.Fprintf(out, "- %s\n", s)
				}
				return nil
			}
			q, added, err := a.service.SuggestQuestForMood(ctx, args[0])
			if err != nil {
				return err
			}
			switch {
			case added:
				fmt.Fprintf(out, "added %s %s\n", shortID(q.ID), q.Title)
			case q.Title != "":
				fmt.Fprintf(out, "already on your list: %s\n", q.Title)
			default:
				fmt.Fprintf(out, "no suggestion for %s\n", args[0])
			}
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
