package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// quietCLI returns a CLI whose logs and status output are captured.
func quietCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	t.Cleanup(func() { stdout = old })
	return New(io.Discard, log.InfoLevel), &out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// noConfig points the default config lookup at an empty directory.
func noConfig(t *testing.T) *sessionOpts {
	t.Helper()
	return &sessionOpts{config: writeFile(t, "config.toml", "")}
}

const sampleScript = `title = "Sample"
kind = "linked"

[[op]]
call = "add"
args = ["A"]

[[op]]
call = "add"
args = ["B"]

[[op]]
call = "size"

[[op]]
call = "insert"
args = [1, "C"]
`
