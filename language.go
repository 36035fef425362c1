package main

import (
	"net/url"
	"path/filepath"
	"strings"
)

// fenceLanguages maps a lowercase file extension (without the dot) to the
// language tag placed on a markdown code fence.
var fenceLanguages = map[string]string{
	"js":   "javascript",
	"mjs":  "javascript",
	"cjs":  "javascript",
	"jsx":  "jsx",
	"ts":   "typescript",
	"tsx":  "tsx",
	"py":   "python",
	"rb":   "ruby",
	"java": "java",
	"kt":   "kotlin",
	"go":   "go",
	"rs":   "rust",
	"c":    "c",
	"h":    "c",
	"cpp":  "cpp",
	"cs":   "csharp",
	"php":  "php",
	"json": "json",
	"yml":  "yaml",
	"yaml": "yaml",
	"md":   "markdown",
	"html": "html",
	"css":  "css",
	"scss": "scss",
	"sql":  "sql",
	"sh":   "bash",
	"bash": "bash",
	"zsh":  "bash",
	"toml": "toml",
	"xml":  "xml",
}

// fenceLanguageForPath returns the fence tag for a file path. Unmapped
// extensions, including names without one, get the empty tag so the block
// renders as plain text.
func fenceLanguageForPath(filePath string) string {
	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	lang, ok := fenceLanguages[strings.ToLower(ext)]
	if !ok {
		return ""
	}
	return lang
}

// fenceLanguage returns the fence tag for a record. Web pages have already
// been converted to markdown, so their URL extension is irrelevant.
func fenceLanguage(rec ExtractionRecord) string {
	switch rec.Source {
	case SourceWebPage:
		return "markdown"
	case SourceWebFile:
		if u, err := url.Parse(rec.RelPath); err == nil {
			return fenceLanguageForPath(u.Path)
		}
	}
	return fenceLanguageForPath(rec.RelPath)
}
