package main

import (
	"os"
	"path/filepath"
	"testing"
)

// mustWrite creates root/rel with content, including parent directories.
func mustWrite(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// testConfig returns a valid config for root whose outputs live in a
// separate temp dir.
func testConfig(t *testing.T, root string, targets ...string) Config {
	t.Helper()
	outDir := t.TempDir()
	return Config{
		Root:           root,
		Targets:        targets,
		IgnoredNames:   defaultIgnoredNames,
		RawOutput:      filepath.Join(outDir, defaultRawOutput),
		MarkdownOutput: filepath.Join(outDir, defaultMarkdownOutput),
		Title:          defaultTitle,
		WebSelector:    defaultWebSelector,
	}
}
