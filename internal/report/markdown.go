// Package report turns a scan result into its user-facing outputs: the
// Markdown report, the JSON dump, the deletion script, and the delete
// operation itself.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/assetsweep/assetsweep/internal/scanner"
)

// WriteMarkdown renders the scan result as a Markdown report.
func WriteMarkdown(w io.Writer, res *scanner.Result) error {
	var b strings.Builder

	b.WriteString("# Unused assets report\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| | Count | Size |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| Used assets | %d | %s |\n", len(res.Used), FormatBytes(res.UsedBytes))
	fmt.Fprintf(&b, "| Unused assets | %d | %s |\n", len(res.Unused), FormatBytes(res.UnusedBytes))
	fmt.Fprintf(&b, "| Total | %d | %s |\n", len(res.Used)+len(res.Unused), FormatBytes(res.TotalBytes()))
	fmt.Fprintf(&b, "\nScanned %d code files against %d identifiers. Reclaimable: **%s**.\n",
		res.CodeFiles, res.Identifiers, FormatBytes(res.UnusedBytes))

	if len(res.Unused) > 0 {
		b.WriteString("\n## Unused assets\n\n")
		b.WriteString("These files are never referenced by identifier or literal path and can be deleted:\n\n")
		for _, asset := range res.Unused {
			fmt.Fprintf(&b, "- `%s` (%s)\n", asset.Path, FormatBytes(asset.Size))
		}
	} else {
		b.WriteString("\nNo unused assets found.\n")
	}

	if len(res.Used) > 0 {
		b.WriteString("\n## Used assets\n\n")
		b.WriteString("| Asset | Size | Matches | Identifiers |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, asset := range res.Used {
			ids := "—"
			if len(asset.Identifiers) > 0 {
				ids = "`" + strings.Join(asset.Identifiers, "`, `") + "`"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %d | %s |\n",
				asset.Path, FormatBytes(asset.Size), asset.Matches, ids)
		}
	}

	if len(res.MissingFiles) > 0 || len(res.DanglingAliases) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, m := range res.MissingFiles {
			fmt.Fprintf(&b, "- `%s` resolves to `%s`, which does not exist on disk\n", m.Identifier, m.Path)
		}
		for _, d := range res.DanglingAliases {
			fmt.Fprintf(&b, "- alias `%s` points at `%s`, which has no direct declaration\n", d.Alias, d.Target)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdownFile writes the Markdown report to path. The report is the
// primary deliverable: a write failure here is the one fatal error of a scan.
func WriteMarkdownFile(path string, res *scanner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

// FormatBytes renders a byte count in a human-readable unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
