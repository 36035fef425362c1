package main

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Extractor runs one extraction: read the targets, write the raw and
// markdown outputs, then the optional extras.
type Extractor struct {
	cfg       Config
	out       io.Writer
	logger    *zap.Logger
	client    *http.Client
	tokenizer Tokenizer // nil disables token counting
}

// Result is what a run produced, mostly useful to callers and tests.
type Result struct {
	Records  []ExtractionRecord
	Raw      string
	Markdown string
	Tree     string
	Summary  Summary
}

// NewExtractor creates an Extractor writing console lines to out.
func NewExtractor(cfg Config, out io.Writer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		cfg:    cfg,
		out:    out,
		logger: logger,
		client: &http.Client{Timeout: webFetchTimeout},
	}
}

// WithTokenizer enables the token count in the summary.
func (e *Extractor) WithTokenizer(tk Tokenizer) *Extractor {
	e.tokenizer = tk
	return e
}

// Run performs the extraction. Missing targets never fail the run; only
// failing to write one of the two output files does. The raw file is not
// rolled back when the markdown file cannot be written.
func (e *Extractor) Run() (*Result, error) {
	e.logger.Debug("Starting extraction",
		zap.String("root", e.cfg.Root),
		zap.Int("targets", len(e.cfg.Targets)))

	paths := resolvePaths(e.cfg.Root, e.cfg.Targets)
	records := e.readRecords(paths)

	raw := renderRaw(records)
	if err := writeOutputFile(e.cfg.RawOutput, raw); err != nil {
		return nil, err
	}

	tree := e.directoryTree()
	markdown := renderMarkdown(markdownDocument{
		Title:       e.cfg.Title,
		Description: e.cfg.Description,
		Records:     records,
		Tree:        tree,
	})
	if err := writeOutputFile(e.cfg.MarkdownOutput, markdown); err != nil {
		return nil, err
	}

	res := &Result{
		Records:  records,
		Raw:      raw,
		Markdown: markdown,
		Tree:     tree,
		Summary:  summarize(records),
	}
	e.runExtras(res)
	e.printSummary(res.Summary)
	fmt.Fprintf(e.out, "\nDone! Created %s and %s\n", e.cfg.RawOutput, e.cfg.MarkdownOutput)
	return res, nil
}

// directoryTree renders the tree of the root. A root that cannot be read
// still yields its own line.
func (e *Extractor) directoryTree() string {
	label := e.cfg.RootLabel
	if label == "" {
		label = rootLabel(e.cfg.Root)
	}

	walker := newTreeWalker(e.cfg.Root, e.cfg.IgnoredNames, e.cfg.UseGitignore, e.logger)
	entries, err := walker.walk(e.cfg.Root)
	if err != nil {
		e.logger.Warn("Failed to walk repository root", zap.String("root", e.cfg.Root), zap.Error(err))
	}
	tree, err := renderTree(label, entries)
	if err != nil {
		e.logger.Error("Failed to render directory tree", zap.Error(err))
		return label + "/\n"
	}
	return tree
}

// rootLabel names the tree root after the base of root. renderTree appends
// the "/", so a filesystem root yields an empty label.
func rootLabel(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return strings.TrimSuffix(filepath.Base(abs), string(filepath.Separator))
}

// runExtras handles the optional outputs. Their failures are reported but
// do not fail the run, since both main outputs already exist.
func (e *Extractor) runExtras(res *Result) {
	if e.tokenizer != nil {
		res.Summary.TotalTokens = e.tokenizer.CountTokens(res.Raw)
	}

	if e.cfg.PDFOutput != "" {
		if err := generatePDF(res, e.cfg.Title, e.cfg.PDFOutput); err != nil {
			e.logger.Error("Error generating PDF", zap.String("file", e.cfg.PDFOutput), zap.Error(err))
		} else {
			fmt.Fprintf(e.out, "Successfully saved PDF to %s\n", e.cfg.PDFOutput)
		}
	}

	if e.cfg.CopyToClipboard {
		if err := copyToClipboard(res.Raw); err != nil {
			e.logger.Warn("Error writing to clipboard", zap.Error(err))
		} else {
			fmt.Fprintln(e.out, "Raw output copied to clipboard.")
		}
	}
}

func (e *Extractor) printSummary(s Summary) {
	fmt.Fprintln(e.out, "\n--- Summary ---")
	fmt.Fprintf(e.out, "Files found: %d\n", s.Found)
	fmt.Fprintf(e.out, "Files missing: %d\n", s.Missing)
	fmt.Fprintf(e.out, "Total size: %d bytes\n", s.TotalSize)
	if e.tokenizer != nil {
		fmt.Fprintf(e.out, "Total tokens: %d\n", s.TotalTokens)
	}
}
