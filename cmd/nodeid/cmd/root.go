package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "nodeid",
	Short: "Inspect NodeIDs and the standard node registry",
	Long: `nodeid parses and encodes NodeIDs and queries the table of standard
nodes in namespace 0.

Examples:
  nodeid lookup Server               # name to NodeID
  nodeid lookup i=2253               # NodeID to name
  nodeid parse "ns=2;s=Motor1"       # all encodings of a NodeID
  nodeid dump --format yaml --sorted # export the registry
  nodeid verify                      # check the registry and print its digest`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}
