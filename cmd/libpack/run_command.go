package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"libpack/internal/config"
	"libpack/internal/consolidate"
	"libpack/internal/logging"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var imagesOnly bool
	var minWidth int
	var libraryDir string
	var outputDir string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Consolidate the library into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathOverrides(cfg, libraryDir, outputDir); err != nil {
				return err
			}

			opts := consolidate.Options{
				ImagesOnly:   cfg.Consolidate.ImagesOnly,
				MinWidth:     cfg.Consolidate.MinWidth,
				VerifyCopies: cfg.Consolidate.VerifyCopies,
			}
			if cmd.Flags().Changed("images-only") {
				opts.ImagesOnly = imagesOnly
			} else if stdinIsTerminal() {
				opts.ImagesOnly = promptYesNo(cmd, "Process only image files? (y/N): ")
			}
			if cmd.Flags().Changed("min-width") {
				opts.MinWidth = minWidth
			}
			if opts.MinWidth < 0 {
				return fmt.Errorf("minimum width must not be negative (got %d)", opts.MinWidth)
			}

			logger, err := logging.NewFromConfig(cfg.Logging.Format, cfg.Logging.Level, cfg.Paths.LogDir)
			if err != nil {
				return err
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			lock := flock.New(filepath.Join(cfg.Paths.OutputDir, ".libpack.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another libpack run is writing to this output directory")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			report, err := consolidate.New(cfg, logger, opts).Run(cmd.Context())
			if err != nil {
				if errors.Is(err, consolidate.ErrLibraryMissing) {
					return fmt.Errorf("%w (set paths.library_dir or pass --library)", err)
				}
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			renderSummary(cmd, cfg, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&imagesOnly, "images-only", false, "Copy only files classified as images")
	cmd.Flags().IntVar(&minWidth, "min-width", 0, "Exclude items narrower than this width (0 disables)")
	cmd.Flags().StringVar(&libraryDir, "library", "", "Library root (overrides paths.library_dir)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (overrides paths.output_dir)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run report as JSON")

	return cmd
}

func applyPathOverrides(cfg *config.Config, libraryDir, outputDir string) error {
	var err error
	if strings.TrimSpace(libraryDir) != "" {
		if cfg.Paths.LibraryDir, err = config.ExpandPath(libraryDir); err != nil {
			return fmt.Errorf("resolve --library: %w", err)
		}
	}
	if strings.TrimSpace(outputDir) != "" {
		if cfg.Paths.OutputDir, err = config.ExpandPath(outputDir); err != nil {
			return fmt.Errorf("resolve --output: %w", err)
		}
	}
	return cfg.Validate()
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func promptYesNo(cmd *cobra.Command, question string) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), question)
		line, err := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Please answer 'y' or 'n' (or press Enter for no)")
	}
}

func renderSummary(cmd *cobra.Command, cfg *config.Config, report *consolidate.Report) {
	out := cmd.OutOrStdout()

	counters := report.Counters()
	if stdoutIsTerminal() {
		rows := make([][]string, 0, len(counters))
		for _, counter := range counters {
			rows = append(rows, []string{counter.Label, strconv.Itoa(counter.Value)})
		}
		fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	} else {
		for _, counter := range counters {
			fmt.Fprintf(out, "%s: %d\n", counter.Label, counter.Value)
		}
	}
	fmt.Fprintf(out, "Consolidated metadata saved to %s\n", cfg.OutputMetadataPath())
	fmt.Fprintln(out, "Original library files remain unchanged")
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
