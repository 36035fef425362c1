package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultRawOutput      = "llm.txt"
	defaultMarkdownOutput = "repo_structure.md"
	defaultTitle          = "Project Structure"
	defaultWebSelector    = "main, article, body"
)

// defaultIgnoredNames are the entry names left out of the directory tree.
var defaultIgnoredNames = []string{
	".git",
	"node_modules",
	".next",
	"__pycache__",
	"dist",
	"build",
	"target",
	"venv",
	"env",
}

// Config is everything one extraction run needs. It is assembled from
// viper once the repository root is known, so presets can be detected.
type Config struct {
	Root           string   `validate:"required"`
	Targets        []string `validate:"required,min=1,dive,required"`
	IgnoredNames   []string `validate:"dive,required"`
	RawOutput      string   `validate:"required,nefield=MarkdownOutput"`
	MarkdownOutput string   `validate:"required"`
	Title          string
	Description    string // Preset description, rendered as the overview section
	UseGitignore   bool
	WebSelector    string

	RootLabel       string // Tree root line, defaults to the root's base name
	PDFOutput       string
	CopyToClipboard bool
}

var validate = validator.New()

// Validate checks the config and reports every failing field at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// loadConfig builds the run configuration from v for the given root.
// An explicit file list wins; otherwise the target list comes from the
// selected (or detected) project preset.
func loadConfig(v *viper.Viper, root string) (Config, error) {
	cfg := Config{
		Root:           root,
		Targets:        cleanList(v.GetStringSlice("files")),
		IgnoredNames:   cleanList(v.GetStringSlice("ignore_dirs")),
		RawOutput:      v.GetString("output"),
		MarkdownOutput: v.GetString("markdown"),
		Title:          v.GetString("title"),
		UseGitignore:   v.GetBool("gitignore"),
		WebSelector:    v.GetString("web_selector"),

		PDFOutput:       v.GetString("pdf"),
		CopyToClipboard: v.GetBool("clipboard"),
	}

	if len(cfg.Targets) == 0 {
		presets, err := loadPresets(v.GetString("presets_file"))
		if err != nil {
			return Config{}, err
		}
		preset, err := selectPreset(v.GetString("preset"), root, presets)
		if err != nil {
			return Config{}, err
		}
		cfg.Targets = preset.Files
		cfg.Description = preset.Description
		if cfg.Title == "" {
			cfg.Title = preset.Title
		}
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.WebSelector == "" {
		cfg.WebSelector = defaultWebSelector
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// cleanList splits entries on commas, trims them and drops empty ones.
// Env vars reach viper as a single string, so LLMTXT_FILES=a.go,b.go must
// split the same way as --files a.go,b.go.
func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
