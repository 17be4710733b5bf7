package root

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bad     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "levelup",
	Short:         "LevelUp Life: habit quests, mood journal and focus timer",
	Long:          "LevelUp Life tracks daily quests, moods and focus sessions, rewarding consistency with XP, levels, streaks and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file merged into the environment before reading LEVELUP_* settings")

	rootCmd.AddCommand(
		newTUICmd(),
		newStatusCmd(),
		newQuestCmd(),
		newMoodCmd(),
		newFocusCmd(),
		newRemindCmd(),
		newExportCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, bad.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
