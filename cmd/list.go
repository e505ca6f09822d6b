package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/config"
	"github.com/theirongolddev/deeday/internal/roster"

	"github.com/spf13/cobra"
)

var (
	flagSearch string
	flagSort   string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List family members and their next birthdays",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Only show members whose name or relationship contains this")
	listCmd.Flags().StringVar(&flagSort, "sort", "", "Order: added or upcoming (default from config)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	order := sess.cfg.Display.Sort
	if flagSort != "" {
		if flagSort != config.SortAdded && flagSort != config.SortUpcoming {
			return fmt.Errorf("--sort must be %q or %q, got %q", config.SortAdded, config.SortUpcoming, flagSort)
		}
		order = flagSort
	}

	members := roster.Filter(sess.roster.List(), flagSearch)
	if len(members) == 0 {
		fmt.Println("\n  No birthdays added yet.")
		return nil
	}

	entries := birthday.Annotate(members, sess.today())
	if order == config.SortUpcoming {
		birthday.SortByNext(entries)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BIRTHDAY LIST  %s", cli.Plural(len(entries), "member", "members"))))
	fmt.Println()
	title := ""
	if flagSearch != "" {
		title = fmt.Sprintf("Matching %q", flagSearch)
	}
	fmt.Print(renderEntries(entries, title))
	return nil
}

// renderEntries renders the shared roster table used by list and upcoming.
func renderEntries(entries []birthday.Entry, title string) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		msg := e.Info.Message()
		if e.Info.IsToday() {
			msg = cli.RenderCelebration(msg)
		}
		rows = append(rows, []string{
			e.Member.ShortID(),
			e.Member.Name,
			e.Member.Relationship,
			cli.FormatBirthday(e.Member.Birthdate),
			cli.FormatWeekday(e.Info.Next),
			strconv.Itoa(e.Info.DaysUntil),
			msg,
		})
	}

	return cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"ID", "Name", "Relationship", "Birthday", "Day", "Days", "Status"},
		Rows:    rows,
		Right:   []bool{false, false, false, false, false, true, false},
	})
}
