package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/namespace"
	"github.com/uastack/nodeid/registry"
)

var parseNamespaces string

var parseCmd = &cobra.Command{
	Use:   "parse <nodeid>...",
	Short: "Show every encoding of NodeIDs",
	Long: `Parses NodeIDs in canonical string form and prints the diagnostic rendering,
the binary, JSON and protobuf encodings and the hash of each.

The namespace array used to render URIs is read from a YAML document:

  namespaces:
    - http://opcfoundation.org/UA/
    - urn:example:plant

Examples:
  nodeid parse i=2253 "ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63"
  nodeid parse --namespaces plant.yaml "ns=1;s=Motor1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseNamespaces, "namespaces", "n", "", "YAML file with the namespace array")
}

func loadNamespaces(path string) (*namespace.Array, error) {
	if path == "" {
		return namespace.NewArray()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return namespace.LoadYAML(f)
}

func runParse(cmd *cobra.Command, args []string) error {
	table, err := loadNamespaces(parseNamespaces)
	if err != nil {
		return fmt.Errorf("load namespaces: %w", err)
	}
	logger.Debug("namespace table loaded", "path", parseNamespaces, "namespaces", table.Len())

	out := cmd.OutOrStdout()
	for i, arg := range args {
		id, err := nodeid.Parse(arg)
		if err != nil {
			return err
		}
		js, err := id.MarshalJSON()
		if err != nil {
			return err
		}
		pb, err := id.Marshal()
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "canonical: %s\n", id)
		fmt.Fprintf(out, "describe:  %s\n", nodeid.Describe(id, table))
		fmt.Fprintf(out, "type:      %s\n", id.Type())
		fmt.Fprintf(out, "binary:    % x\n", nodeid.Encode(id))
		fmt.Fprintf(out, "json:      %s\n", js)
		fmt.Fprintf(out, "proto:     % x\n", pb)
		fmt.Fprintf(out, "hash:      %016x\n", id.Hash())
		if name, ok := registry.NameOf(id); ok {
			fmt.Fprintf(out, "name:      %s\n", name)
		}
	}
	return nil
}
