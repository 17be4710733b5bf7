package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak, badges and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := a.service.Snapshot(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, heading.Render("LevelUp Life"))
			fmt.Fprintf(out, "Level:   %d (%d/%d XP)\n", d.Level, d.XP, d.XPRequired)
			fmt.Fprintf(out, "Streak:  %d day(s)\n", d.Streak)
			fmt.Fprintf(out, "Quests:  %d/%d done (%d%%)\n", d.Quests.Completed, d.Quests.Total, d.Quests.Percent)
			fmt.Fprintf(out, "Moods:   %d logged today\n", d.MoodsToday)
			fmt.Fprintf(out, "Focus:   %d session(s) today\n", d.FocusToday)
			if d.Reminder.Enabled {
				fmt.Fprintf(out, "Water:   every %d min\n", d.Reminder.IntervalMinutes)
			} else {
				fmt.Fprintln(out, "Water:   reminder off")
			}
			if len(d.Badges) > 0 {
				fmt.Fprintln(out, heading.Render("Badges"))
				for _, b := range d.Badges {
					fmt.Fprintf(out, "- %s\n", b)
				}
			}
			if d.Quote != "" {
				fmt.Fprintln(out, muted.Render(d.Quote))
			}
			return nil
		},
	}
}
