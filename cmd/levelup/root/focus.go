package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFocusCmd() *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show today's focus sessions, or record a finished one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			var n int
			if record {
				n, err = a.service.CompleteFocusSession(ctx)
			} else {
				n, err = a.service.FocusSessionsToday(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "focus sessions today: %d\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&record, "done", false, "Record a completed focus session")
	return cmd
}
