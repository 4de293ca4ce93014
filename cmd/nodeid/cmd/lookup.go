package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/registry"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name|nodeid>",
	Short: "Resolve a standard name to its NodeID or back",
	Long: `Resolves the symbolic name of a standard node to its NodeID. An argument
in canonical NodeID form is resolved to the name instead.

Examples:
  nodeid lookup AlarmConditionType_EnabledState
  nodeid lookup i=9118`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	r := registry.Default()
	arg := args[0]

	name := arg
	if id, err := nodeid.Parse(arg); err == nil {
		n, ok := r.NameOf(id)
		if !ok {
			return fmt.Errorf("%v is not a standard node", id)
		}
		name = n
	} else {
		logger.Debug("argument is not a NodeID, resolving as name", "arg", arg, "err", err)
	}

	e, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown standard node %q", name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Name, e.ID, e.Class)
	return nil
}
