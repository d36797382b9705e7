package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/assetsweep/assetsweep/internal/config"
	"github.com/assetsweep/assetsweep/internal/report"
	"github.com/assetsweep/assetsweep/internal/scanner"
	"github.com/assetsweep/assetsweep/internal/watcher"
)

var (
	scanQuietFlag  bool
	scanDeleteFlag bool
	scanWatchFlag  bool
	scanScriptFlag string
	scanReportFlag string
	scanFormatFlag string
	scanBarWidth   int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a project for unused assets",
	Long: `Scan discovers asset files and code files, extracts asset constant
declarations (including one level of alias indirection), counts textual
references to every identifier and literal asset path, and classifies each
asset as used or unused.

The report is the primary deliverable; failing to write it is the only
fatal error.

Examples:
  # Scan the current directory
  assetsweep scan

  # Scan a project and emit a reviewable deletion script
  assetsweep scan ~/src/myapp --script remove-unused.sh

  # Delete unused assets immediately after the scan
  assetsweep scan --delete

  # Rescan whenever assets or code change
  assetsweep scan --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanQuietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	scanCmd.Flags().BoolVar(&scanDeleteFlag, "delete", false, "Delete unused assets after the scan")
	scanCmd.Flags().BoolVarP(&scanWatchFlag, "watch", "w", false, "Watch for file changes and rescan")
	scanCmd.Flags().StringVar(&scanScriptFlag, "script", "", "Write a shell script that deletes unused assets")
	scanCmd.Flags().StringVar(&scanReportFlag, "report", "unused-assets.md", "Report output path")
	scanCmd.Flags().StringVar(&scanFormatFlag, "format", "markdown", "Report format: markdown or json")
	scanCmd.Flags().IntVar(&scanBarWidth, "bar-width", 40, "Progress bar width")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFormatFlag != "markdown" && scanFormatFlag != "json" {
		return fmt.Errorf("unknown format %q (valid: markdown, json)", scanFormatFlag)
	}

	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling scan...")
		cancel()
	}()

	rootDir, err := resolveRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine, err := scanner.New(rootDir, cfg)
	if err != nil {
		return err
	}

	if err := scanOnce(ctx, engine, rootDir); err != nil {
		return err
	}

	if scanWatchFlag {
		return watchAndRescan(ctx, engine, rootDir, cfg)
	}

	return nil
}

// scanOnce runs a full scan and produces every requested output.
func scanOnce(ctx context.Context, engine *scanner.Engine, rootDir string) error {
	progress := NewScanProgress(scanQuietFlag, scanBarWidth)

	res, err := engine.Scan(ctx, progress)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("scan cancelled")
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanFormatFlag == "json" {
		err = report.WriteJSONFile(scanReportFlag, res)
	} else {
		err = report.WriteMarkdownFile(scanReportFlag, res)
	}
	if err != nil {
		return err
	}

	printSummary(res)

	if scanScriptFlag != "" {
		if err := report.WriteScriptFile(scanScriptFlag, res); err != nil {
			return err
		}
		if !scanQuietFlag {
			fmt.Printf("Deletion script written to %s\n", scanScriptFlag)
		}
	}

	if scanDeleteFlag {
		deleted, freed := report.DeleteUnused(rootDir, res)
		if !scanQuietFlag {
			fmt.Printf("✓ Deleted %d unused assets, reclaimed %s\n", deleted, report.FormatBytes(freed))
		}
	}

	return nil
}

// watchAndRescan blocks, rescanning after every debounced change batch.
func watchAndRescan(ctx context.Context, engine *scanner.Engine, rootDir string, cfg *config.Config) error {
	var dirs []string
	for _, root := range append(append([]string{}, cfg.Assets.Roots...), cfg.Code.Roots...) {
		dirs = append(dirs, filepath.Join(rootDir, root))
	}
	extensions := append(append([]string{}, cfg.Assets.Extensions...), cfg.Code.Extensions...)

	w, err := watcher.New(dirs, extensions)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	rescan := make(chan struct{}, 1)
	if err := w.Start(ctx, func(changed []string) {
		if !scanQuietFlag {
			log.Printf("%d files changed, rescanning...", len(changed))
		}
		select {
		case rescan <- struct{}{}:
		default:
		}
	}); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	if !scanQuietFlag {
		log.Println("Watching for changes (Ctrl+C to stop)...")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rescan:
			if err := scanOnce(ctx, engine, rootDir); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Printf("Rescan failed: %v", err)
			}
		}
	}
}

func resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func printSummary(res *scanner.Result) {
	if scanQuietFlag {
		fmt.Printf("Scan complete: %d used, %d unused (%s reclaimable)\n",
			len(res.Used), len(res.Unused), report.FormatBytes(res.UnusedBytes))
		return
	}

	fmt.Println()
	fmt.Printf("✓ Scan complete: %d assets, %d code files, %d identifiers\n",
		len(res.Used)+len(res.Unused), res.CodeFiles, res.Identifiers)
	fmt.Printf("  Used:   %d assets (%s)\n", len(res.Used), report.FormatBytes(res.UsedBytes))
	fmt.Printf("  Unused: %d assets (%s reclaimable)\n", len(res.Unused), report.FormatBytes(res.UnusedBytes))

	for _, m := range res.MissingFiles {
		log.Printf("Warning: %s resolves to %s, which does not exist", m.Identifier, m.Path)
	}
	for _, d := range res.DanglingAliases {
		log.Printf("Warning: alias %s points at undeclared %s", d.Alias, d.Target)
	}
	fmt.Printf("Report written to %s\n", scanReportFlag)
}
