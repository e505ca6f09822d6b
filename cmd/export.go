package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/deeday/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the roster to stdout as JSON, YAML or TOML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "Output format: json, yaml or toml")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	sess, err := openSession(false)
	if err != nil {
		return err
	}
	defer sess.Close()

	return writeMembers(os.Stdout, flagFormat, sess.roster.List())
}

// memberDoc wraps the roster for formats that need a top-level table.
type memberDoc struct {
	Members []model.Member `toml:"members" yaml:"members"`
}

func writeMembers(w io.Writer, format string, members []model.Member) error {
	if members == nil {
		members = []model.Member{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(members)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(memberDoc{Members: members}); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(memberDoc{Members: members})
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}

// readMembers decodes a file written by writeMembers.
func readMembers(r io.Reader, format string) ([]model.Member, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		var members []model.Member
		if err := json.Unmarshal(data, &members); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return members, nil
	case "yaml", "yml":
		var doc memberDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return doc.Members, nil
	case "toml":
		var doc memberDoc
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
		return doc.Members, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}
