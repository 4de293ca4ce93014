package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uastack/nodeid/registry"
)

var (
	dumpFormat string
	dumpSorted bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write all registry entries",
	Long: `Writes every entry of the standard registry as name, NodeID and node class.

Without --sorted the entries come in table order, which is stable for a
given build. With --sorted they are ordered by NodeID.

Examples:
  nodeid dump
  nodeid dump --format json --sorted
  nodeid dump --format yaml > registry.yaml`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format: text, yaml or json")
	dumpCmd.Flags().BoolVar(&dumpSorted, "sorted", false, "order entries by NodeID")
}

func runDump(cmd *cobra.Command, args []string) error {
	r := registry.Default()
	var entries []registry.Entry
	if dumpSorted {
		entries = r.Sorted()
	} else {
		entries = slices.Collect(r.Entries())
	}
	logger.Debug("dumping registry", "entries", len(entries), "format", dumpFormat, "sorted", dumpSorted)
	return writeEntries(cmd.OutOrStdout(), dumpFormat, entries)
}

func writeEntries(w io.Writer, format string, entries []registry.Entry) error {
	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.ID, e.Class)
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, want text, yaml or json", format)
	}
}
