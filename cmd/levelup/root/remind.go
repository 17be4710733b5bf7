package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind <on|off> [minutes]",
		Short: "Configure the hydration reminder",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on":
				enabled = true
			case "off":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			minutes := 0
			if len(args) == 2 {
				v, err := strconv.Atoi(args[1])
				if err != nil || v <= 0 {
					return fmt.Errorf("invalid minutes: %q", args[1])
				}
				minutes = v
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx, modeCLI)
			if err != nil {
				return err
			}
			defer cleanup()

			cfg, err := a.service.ConfigureReminder(ctx, enabled, minutes)
			if err != nil {
				return err
			}
			if cfg.Enabled {
				fmt.Fprintf(cmd.OutOrStdout(), "hydration reminder every %d min (fires while the dashboard is open)\n", cfg.IntervalMinutes)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "hydration reminder off")
			}
			return nil
		},
	}
}
