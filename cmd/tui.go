package cmd

import (
	"fmt"

	"github.com/theirongolddev/deeday/internal/config"
	"github.com/theirongolddev/deeday/internal/tui"
	"github.com/theirongolddev/deeday/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive birthday list (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Logs go to a file; the alt screen owns the terminal.
	sess, err := openSession(true)
	if err != nil {
		return err
	}
	defer sess.Close()

	theme.SetActive(sess.cfg.Appearance.Theme)

	// Hex palettes and the selected-row highlight need TrueColor.
	// The ANSI-16 theme keeps the detected profile.
	if sess.cfg.Appearance.Theme != theme.Terminal.Name {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(sess.roster, tui.Options{
		Today:        sess.today,
		SortUpcoming: sess.cfg.Display.Sort == config.SortUpcoming,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	sess.logger.Debug("tui exited", "members", sess.roster.Len(), "phase", sess.roster.Phase())
	return nil
}
