package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/registry"
)

var errVerify = errors.New("registry verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the registry and print its digest",
	Long: `Rebuilds the standard registry, checks that names and NodeIDs map to each
other one to one, that every entry has an inclusion proof against the
digest and that every NodeID survives the string, binary, JSON and
protobuf round trips. The Merkle digest of the table is printed on success.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	r, err := registry.NewStandard()
	if err != nil {
		return err
	}

	failures := 0
	for name, id := range r.All() {
		if err := verifyEntry(r, name, id); err != nil {
			logger.Error("entry failed", "name", name, "id", id.String(), "err", err)
			failures++
			continue
		}
		logger.Debug("entry verified", "name", name, "id", id.String())
	}
	if failures > 0 {
		return fmt.Errorf("%w: %d of %d entries", errVerify, failures, r.Len())
	}

	digest := r.Digest()
	fmt.Fprintf(cmd.OutOrStdout(), "verified %d entries\ndigest: %x\n", r.Len(), digest)
	return nil
}

func verifyEntry(r *registry.Registry, name string, id nodeid.NodeID) error {
	if got, ok := r.ByName(name); !ok || got != id {
		return fmt.Errorf("ByName returned %v, %v", got, ok)
	}
	if got, ok := r.NameOf(id); !ok || got != name {
		return fmt.Errorf("NameOf returned %q, %v", got, ok)
	}
	e, _ := r.Lookup(name)
	if p, ok := r.Prove(name); !ok || !registry.VerifyEntry(r.Digest(), e, p) {
		return errors.New("inclusion proof does not verify against the digest")
	}

	if got, err := nodeid.Parse(id.String()); err != nil || got != id {
		return fmt.Errorf("string round trip: %v, %v", got, err)
	}

	var fromBinary nodeid.NodeID
	if err := fromBinary.UnmarshalBinary(nodeid.Encode(id)); err != nil || fromBinary != id {
		return fmt.Errorf("binary round trip: %v, %v", fromBinary, err)
	}

	js, err := id.MarshalJSON()
	if err != nil {
		return err
	}
	if got, err := nodeid.DecodeJSON(js); err != nil || got != id {
		return fmt.Errorf("json round trip: %v, %v", got, err)
	}

	pb, err := id.Marshal()
	if err != nil {
		return err
	}
	var fromProto nodeid.NodeID
	if err := fromProto.Unmarshal(pb); err != nil || fromProto != id {
		return fmt.Errorf("proto round trip: %v, %v", fromProto, err)
	}
	return nil
}
