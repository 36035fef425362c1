package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// isGitURL checks if the input string looks like a Git repository URL.
// Plain https:// URLs are ambiguous, so only the .git suffix or the git@
// SSH form count.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// repoNameFromURL returns the last path element of a git URL without .git.
func repoNameFromURL(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	return path.Base(strings.ReplaceAll(trimmed, ":", "/"))
}

// cloneGitRepo shallow-clones url into a temporary directory and returns
// its path. The caller removes the directory.
func cloneGitRepo(url string, progress io.Writer, logger *zap.Logger) (string, error) {
	tempDir, err := os.MkdirTemp("", "llmtxt-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	logger.Info("Cloning Git repository", zap.String("url", url), zap.String("dir", tempDir))
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      progress,
		Depth:         1,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}
	return tempDir, nil
}
