package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/substrata-tokens/substrata"
	"github.com/substrata-tokens/substrata/internal/tokens"
)

// Reporter prints human-readable outcomes of generation runs
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, forceColor bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(forceColor),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintGenerated reports a successful run
func (r *Reporter) PrintGenerated(result *substrata.GenerateResult) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleGreen, "✓ Generated tokens at", r.useColors),
		RenderStyle(StyleCyan, result.OutputPath, r.useColors))
	fmt.Fprintf(r.w, "  Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "  Tokens generated: %d\n", result.TokensGenerated)

	if result.FilesScanned == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, "  Warning: no token files found, wrote an empty document", r.useColors))
	}
}

// PrintFiles lists each processed file with its inferred category, in merge order
func (r *Reporter) PrintFiles(result *substrata.GenerateResult) {
	for _, file := range result.Files {
		category := tokens.CategorizeFile(file)
		fmt.Fprintf(r.w, "  - %s %s\n",
			filepath.Base(file),
			RenderStyle(StyleGray, "("+string(category)+")", r.useColors))
	}
}

// PrintError reports a failed run with a hint for the common cases
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "✗", r.useColors), err)

	var hint string
	switch {
	case errors.Is(err, substrata.ErrDirectoryNotFound):
		hint = "Hint: run `substrata init` or point --tokens at your token stylesheets"
	case errors.Is(err, substrata.ErrCollision):
		hint = "Hint: a name is used both as a token and as a group; rename one or disable strict mode"
	}
	if hint != "" {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, hint, r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// PrintWatching announces watch mode
func (r *Reporter) PrintWatching(dir string, patterns []string) {
	fmt.Fprintf(r.w, "%s %s %s\n",
		RenderStyle(StyleCyan, "Watching", r.useColors),
		dir,
		RenderStyle(StyleGray, fmt.Sprintf("(%s)", pluralizeCount(len(patterns), "pattern", "patterns")), r.useColors))
}
