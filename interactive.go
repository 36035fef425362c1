package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"
)

// promptRepoPath asks for the repository root. The prompt is only shown
// when stdin is a terminal, so piped input works without noise.
func promptRepoPath(in io.Reader, out io.Writer, interactive bool) (string, error) {
	if interactive {
		fmt.Fprint(out, "Enter the path to the repository: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read repository path: %w", err)
	}
	root := strings.TrimSpace(line)
	if root == "" {
		return "", errors.New("no repository path given")
	}
	return root, nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// pickTargets lets the user choose target files from the repository with a
// fuzzy finder. A nil result with a nil error means the user aborted.
func pickTargets(root string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no files found to select from")
	}

	idx, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select files to extract. Press Tab to multi-select, Enter to confirm."
			}
			info, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(candidates[i])))
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", candidates[i], statErr)
			}
			return fmt.Sprintf("Path: %s\nSize: %d bytes", candidates[i], info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, index := range idx {
		selected[i] = candidates[index]
	}
	return selected, nil
}
