package cmd

import (
	"fmt"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/cli"

	"github.com/spf13/cobra"
)

var flagWithin int

var upcomingCmd = &cobra.Command{
	Use:     "upcoming",
	Aliases: []string{"next"},
	Short:   "Birthdays coming up soon, soonest first",
	RunE:    runUpcoming,
}

func init() {
	upcomingCmd.Flags().IntVarP(&flagWithin, "within", "w", 0, "Window in days (default from config)")
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcoming(_ *cobra.Command, _ []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	within := sess.cfg.Display.UpcomingDays
	if flagWithin > 0 {
		within = flagWithin
	}

	entries := birthday.Annotate(sess.roster.List(), sess.today())
	birthday.SortByNext(entries)
	entries = birthday.Within(entries, within)

	if len(entries) == 0 {
		fmt.Printf("\n  No birthdays in the next %d days.\n", within)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("UPCOMING  Next %dd", within)))
	fmt.Println()
	fmt.Print(renderEntries(entries, "Soonest first"))

	next := entries[0]
	fmt.Println()
	fmt.Printf("  Next up: %s, %s\n", next.Member.Name,
		cli.RenderMuted(cli.FormatCountdown(next.Info.DaysUntil)))
	return nil
}
