package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Add every member from an exported JSON, YAML or TOML file",
	Long: "Adds each member in FILE to the roster with a fresh id. Records missing a\n" +
		"name, birthdate or relationship are skipped. Format is taken from the extension\n" +
		"unless --format is given.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var flagImportFormat string

func init() {
	importCmd.Flags().StringVarP(&flagImportFormat, "format", "f", "", "Input format: json, yaml or toml")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	format := flagImportFormat
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	f, err := os.Open(path) //nolint:gosec // user-supplied import path
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	members, err := readMembers(f, format)
	if err != nil {
		return err
	}

	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	added, skipped := 0, 0
	for _, m := range members {
		if _, ok := sess.roster.Add(m.Name, m.Birthdate, m.Relationship); ok {
			added++
		} else {
			skipped++
		}
	}

	fmt.Printf("  Imported %d of %d members", added, len(members))
	if skipped > 0 {
		fmt.Printf(" (%d incomplete, skipped)", skipped)
	}
	fmt.Println()
	return nil
}
