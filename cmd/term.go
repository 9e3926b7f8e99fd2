package main

import (
	"io"
	"log"
	"path/filepath"

	"aurafocus/internal/ui/faces"
	"aurafocus/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const termLogFile = "term.log"

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the timer in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerm()
	},
}

func runTerm() error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	// The alternate screen owns the terminal; log to a file or not at all.
	if verbose {
		logFile, err := tea.LogToFile(filepath.Join(sess.dir, termLogFile), "aurafocus")
		if err != nil {
			return err
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	notifier := terminal.NewNotifier()
	sess.keeper.SetNotifier(notifier)
	lang, _ := faces.ParseLanguage(sess.state.UI.Language)
	return terminal.Run(sess.keeper, notifier, lang)
}
