package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ScanProgress implements scanner.Progress with a terminal progress bar.
type ScanProgress struct {
	quiet    bool
	barWidth int
	bar      *progressbar.ProgressBar
	scanned  int
}

// NewScanProgress creates a progress reporter. barWidth controls the bar's
// rendered width; quiet suppresses all output.
func NewScanProgress(quiet bool, barWidth int) *ScanProgress {
	if barWidth <= 0 {
		barWidth = 40
	}
	return &ScanProgress{
		quiet:    quiet,
		barWidth: barWidth,
	}
}

func (p *ScanProgress) OnScanStart(totalFiles int) {
	if p.quiet {
		return
	}
	p.scanned = 0
	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning code files"),
		progressbar.OptionSetWidth(p.barWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *ScanProgress) OnFilesScanned(scanned, total int) {
	if p.quiet || p.bar == nil {
		return
	}
	if delta := scanned - p.scanned; delta > 0 {
		p.bar.Add(delta)
		p.scanned = scanned
	}
}

func (p *ScanProgress) OnScanComplete(total int) {
	if p.quiet || p.bar == nil {
		return
	}
	if delta := total - p.scanned; delta > 0 {
		p.bar.Add(delta)
		p.scanned = total
	}
	p.bar.Finish()
	p.bar = nil
}
