package registry

import (
	"errors"
	"fmt"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/storage"
)

var (
	ErrDuplicateName    = storage.ErrDuplicateName
	ErrDuplicateID      = storage.ErrDuplicateID
	ErrForeignNamespace = errors.New("node id outside the standard namespace")
)

// IntegrityError reports an entry that cannot be added to a Registry. It
// means the table itself is corrupt.
type IntegrityError struct {
	Entry Entry
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("registry: entry %q (%v): %v", e.Entry.Name, e.Entry.ID, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func checkNamespace(id nodeid.NodeID) error {
	if id.Namespace() != 0 {
		return fmt.Errorf("%w: ns=%d", ErrForeignNamespace, id.Namespace())
	}
	return nil
}
