// Package testutil provides shared helpers for integration-style tests:
// a thread-safe log buffer and a harness that materializes conf trees into
// a temp directory and runs a full App scan over them.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/confsift/confsift/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteTree materializes files (relative path → contents) under a new temp
// directory and returns its root.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

// HarnessResult holds the outcomes of a full scan run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunScan materializes files into a temp directory and runs a full App
// scan over it with the given config adjustments applied on top of a
// deterministic baseline.
func RunScan(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	root := WriteTree(t, files)
	cfg := app.Config{
		Roots:     []string{root},
		RunID:     "test-run",
		Format:    "json",
		LogFormat: "text",
		LogLevel:  "debug",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &SafeBuffer{}
	a := app.New(&out, logs, validated)
	runErr := a.Run(context.Background())

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       a,
	}
}
