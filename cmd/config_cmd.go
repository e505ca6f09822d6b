// Package cmd implements the deeday CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()
	cfg := sess.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Backend:        %s\n", cfg.General.Backend)
	fmt.Printf("    Members:        %s\n", cli.FormatNumber(int64(sess.roster.Len())))
	if at, ok, err := sess.backend.UpdatedAt(); err == nil && ok {
		fmt.Printf("    Last saved:     %s\n", at.Local().Format("2006-01-02 15:04"))
	} else {
		fmt.Println("    Last saved:     never")
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Upcoming window: %d days\n", cfg.Display.UpcomingDays)
	fmt.Printf("    Sort:            %s\n", cfg.Display.Sort)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `deeday setup` to reconfigure.")
	return nil
}
