package filesystem

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestWatchItDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := WatchItDir()
	if filepath.Base(dir) != ".watchit" {
		t.Fatalf("WatchItDir() = %q, want a .watchit directory", dir)
	}
	if !strings.HasPrefix(dir, home) {
		t.Fatalf("WatchItDir() = %q, not under %q", dir, home)
	}
}
