package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/assetsweep/assetsweep/internal/scanner"
)

// WriteScript renders a POSIX shell script that deletes the unused assets.
// The script is meant to be reviewed before running.
func WriteScript(w io.Writer, res *scanner.Result) error {
	var b strings.Builder

	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "# Deletes %d unused assets (%s). Generated by assetsweep; review before running.\n",
		len(res.Unused), FormatBytes(res.UnusedBytes))
	b.WriteString("set -e\n\n")

	for _, asset := range res.Unused {
		fmt.Fprintf(&b, "rm -f %s\n", shellQuote(asset.Path))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteScriptFile writes the deletion script to path with execute permission.
func WriteScriptFile(path string, res *scanner.Result) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("failed to write deletion script: %w", err)
	}
	defer f.Close()

	if err := WriteScript(f, res); err != nil {
		return fmt.Errorf("failed to write deletion script: %w", err)
	}
	return f.Close()
}

// shellQuote single-quotes a path for safe use in a shell script.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
