package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFenceLanguageForPath(t *testing.T) {
	cases := map[string]string{
		"app/page.tsx":          "tsx",
		"src/Index.TS":          "typescript",
		"lib/utils.ts":          "typescript",
		"README.md":             "markdown",
		"package.json":          "json",
		"scripts/deploy.SH":     "bash",
		"docker-compose.yml":    "yaml",
		"Makefile":              "",
		".env.example":          "",
		".gitignore":            "",
		"notes.unknown":         "",
		"archive.tar.gz":        "",
		"components/Home/x.jsx": "jsx",
	}
	for path, want := range cases {
		assert.Equal(t, want, fenceLanguageForPath(path), path)
	}
}

func TestFenceLanguageForPath_CoversWholeTable(t *testing.T) {
	for ext, lang := range fenceLanguages {
		assert.Equal(t, lang, fenceLanguageForPath("dir/file."+ext), ext)
	}
}

func TestFenceLanguage_WebRecords(t *testing.T) {
	page := ExtractionRecord{RelPath: "https://example.com/docs/intro.html", Source: SourceWebPage}
	assert.Equal(t, "markdown", fenceLanguage(page))

	file := ExtractionRecord{RelPath: "https://example.com/api/schema.json?v=2", Source: SourceWebFile}
	assert.Equal(t, "json", fenceLanguage(file))

	local := ExtractionRecord{RelPath: "main.go", Source: SourceFile}
	assert.Equal(t, "go", fenceLanguage(local))
}
