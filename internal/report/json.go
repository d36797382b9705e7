package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/assetsweep/assetsweep/internal/scanner"
)

// WriteJSON renders the scan result as indented JSON for machine consumers.
func WriteJSON(w io.Writer, res *scanner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteJSONFile writes the JSON report to path.
func WriteJSONFile(path string, res *scanner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
