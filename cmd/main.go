package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const appName = "AuraFocus"

var (
	configDir    string
	tickInterval time.Duration
	verbose      bool
)

// rootCmd runs the widget when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "aurafocus",
	Short: "Pomodoro focus timer",
	Long: `AuraFocus is a pomodoro timer: focus sessions alternate with short
breaks, and every few focus sessions end with a long break.

Run without a subcommand to open the desktop widget.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Use alternate state directory")
	rootCmd.PersistentFlags().DurationVar(&tickInterval, "tick", time.Second, "Length of one countdown second")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every timer state change")

	rootCmd.AddCommand(widgetCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
