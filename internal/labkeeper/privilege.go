package labkeeper

import (
	"errors"
	"os"
)

var errNotRoot = errors.New("labkeeper must be run as root")

// requireRoot verifies administrative privilege before any mutating action.
// Nothing is touched (no log file either) when the check fails.
func requireRoot() error {
	if os.Geteuid() == 0 {
		return nil
	}
	return errNotRoot
}
