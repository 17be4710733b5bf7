package root

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/levelup/internal/tracker"
)

func newMoodCmd() *cobra.Command {
	var note string
	var tags []string
	cmd := &cobra.Command{
		Use:   "mood [emoji] [label]",
		Short: "Log a mood (+10 XP), or show recent history with no arguments",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				moods, err := a.service.MoodsSorted(ctx)
				if err != nil {
					return err
				}
				if len(moods) == 0 {
					fmt.Fprintln(out, muted.Render("no moods logged"))
					return nil
				}
				for i, m := range moods {
					if i == 10 {
						break
					}
					line := fmt.Sprintf("%s %s %s", time.UnixMilli(m.Timestamp).Local().Format("Jan 2 15:04"), m.Emoji, m.Mood)
					if m.Note != nil {
						line += ": " + *m.Note
					}
					if len(m.Tags) > 0 {
						line += " #" + strings.Join(m.Tags, " #")
					}
					fmt.Fprintln(out, line)
				}
				return nil
			}

			emoji, label := moodFromArgs(args)
			entry, err := a.service.LogMood(ctx, label, emoji, note, tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "logged %s %s (+10 XP)\n", entry.Emoji, entry.Mood)
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags (repeatable)")
	cmd.AddCommand(newMoodUndoCmd(), newMoodShareCmd())
	return cmd
}

// moodFromArgs accepts "<emoji> <label>" or a bare label such as "Calm",
// which gets the default emoji.
func moodFromArgs(args []string) (emoji, label string) {
	if len(args) == 1 && strings.IndexFunc(args[0], unicode.IsLetter) >= 0 {
		return tracker.DefaultMoodEmoji, strings.TrimSpace(args[0])
	}
	return tracker.SplitChipLabel(strings.Join(args, " "))
}

func newMoodUndoCmd() *cobra.Command {
	var keepXP bool
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove the most recent mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			undone, err := a.service.UndoLastMood(ctx, !keepXP)
			if err != nil {
				return err
			}
			if !undone {
				fmt.Fprintln(cmd.OutOrStdout(), "no moods to undo")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "last mood removed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepXP, "keep-xp", false, "Leave the XP granted for the mood in place")
	return cmd
}

func newMoodShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print a share message for the latest mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			text, ok, err := a.service.ShareMessage(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "log a mood before sharing")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
