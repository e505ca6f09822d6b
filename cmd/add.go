package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/deeday/internal/cli"
	"github.com/theirongolddev/deeday/internal/model"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add NAME BIRTHDATE RELATIONSHIP",
	Short: "Add a family member",
	Example: `  deeday add Ann 1990-03-20 Sister
  deeday add "Grandma Rose" 1941-11-02 Grandmother`,
	Args: cobra.MaximumNArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	var name, rawDate, relationship string
	fields := []*string{&name, &rawDate, &relationship}
	for i, a := range args {
		*fields[i] = a
	}

	var birth model.Date
	if rawDate != "" {
		d, err := model.ParseDate(rawDate)
		if err != nil {
			return err
		}
		birth = d
	}

	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	m, ok := sess.roster.Add(name, birth, relationship)
	if !ok {
		fmt.Fprintln(os.Stderr, "  Nothing added: name, birthdate and relationship are all required.")
		return nil
	}

	info := birthdayInfo(sess, m)
	fmt.Printf("  Added %s (%s) %s\n", m.Name, m.ShortID(), cli.RenderMuted("· "+info))
	return nil
}
