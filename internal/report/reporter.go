// Package report renders classcfg results for terminals and tooling.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/rota-app/classcfg"
)

// Format selects how results are written.
type Format string

const (
	// FormatText is human-readable output (default)
	FormatText Format = "text"
	// FormatJSON is machine-readable output
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. Unknown values fall back to text.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Options controls a Reporter.
type Options struct {
	Format    Format
	UseColors bool // Force color output
	Verbose   bool // Print per-class file lists
}

// Reporter handles formatting and outputting results
type Reporter struct {
	w         io.Writer
	format    Format
	useColors bool
	verbose   bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	return &Reporter{
		w:         w,
		format:    format,
		useColors: shouldUseColors(opts, format),
		verbose:   opts.Verbose,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts Options, format Format) bool {
	if format == FormatJSON {
		return false
	}

	// Explicit flag wins
	if opts.UseColors {
		return true
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

// Targets writes the scan targets and statistics.
func (r *Reporter) Targets(cfg classcfg.Config, targets []string, stats classcfg.ScanStats) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, buildTargetsJSON(cfg, targets, stats))
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Scan targets", r.useColors))
	for _, target := range targets {
		fmt.Fprintf(r.w, "  %s\n", target)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s from %s",
		pluralizeCount(stats.FilesScanned, "file", "files"),
		pluralizeCount(stats.Patterns, "pattern", "patterns"))
	if stats.FilesSkipped > 0 {
		fmt.Fprint(r.w, RenderStyle(StyleGray,
			fmt.Sprintf(" (skipped %d ignored)", stats.FilesSkipped), r.useColors))
	}
	fmt.Fprintln(r.w, "")
	return nil
}

// Classes writes the harvested class set.
func (r *Reporter) Classes(set classcfg.ClassSet) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, buildClassesJSON(set))
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Candidate classes", r.useColors))
	for _, c := range set.Classes {
		count := RenderStyle(StyleGray, fmt.Sprintf("(%d)", c.Count), r.useColors)
		fmt.Fprintf(r.w, "  %s %s\n", c.Name, count)
		if r.verbose {
			for _, f := range c.Files {
				fmt.Fprintf(r.w, "      %s\n", f)
			}
		}
	}

	r.warnings(set.Warnings)

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s in %s\n",
		pluralizeCount(len(set.Classes), "class", "classes"),
		pluralizeCount(set.FilesScanned, "file", "files"))
	return nil
}

// Problems writes validation results. An empty list prints a success line.
func (r *Reporter) Problems(path string, problems []classcfg.Problem) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, buildProblemsJSON(path, problems))
	}

	if len(problems) == 0 {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "ok", r.useColors), path)
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, path+":", r.useColors), p.String())
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleRed, pluralizeCount(len(problems), "problem", "problems"), r.useColors))
	return nil
}

func (r *Reporter) warnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "• %s\n", w)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
