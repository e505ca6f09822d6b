package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/model"
	"github.com/theirongolddev/deeday/internal/roster"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a family member by id or id prefix",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	m, err := sess.roster.Resolve(args[0])
	if errors.Is(err, roster.ErrNotFound) {
		fmt.Printf("  No member matches %q; nothing deleted.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	sess.roster.Delete(m.ID)
	fmt.Printf("  Deleted %s (%s)\n", m.Name, cli.RenderMuted(m.Relationship))
	return nil
}

// birthdayInfo formats "March 20 – 5 day(s) away – turning 34" for m.
func birthdayInfo(sess *session, m model.Member) string {
	info := birthday.Compute(m.Birthdate, sess.today())
	return cli.FormatBirthday(m.Birthdate) + " – " + info.Message()
}
