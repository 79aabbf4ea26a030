// Package filesystem locates watchit's per-user state directory.
package filesystem

import (
	"os"
	"path/filepath"
)

// WatchItDir returns the directory holding watchit's config and history,
// ~/.watchit. When no home directory is resolvable the working directory
// stands in, so the tool stays usable in stripped-down environments.
func WatchItDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".watchit")
}
