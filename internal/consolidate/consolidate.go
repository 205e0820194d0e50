package consolidate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"libpack/internal/config"
	"libpack/internal/fileutil"
	"libpack/internal/filetype"
	"libpack/internal/foldermap"
	"libpack/internal/library"
	"libpack/internal/logging"
	"libpack/internal/naming"
)

// ErrLibraryMissing reports an absent library root. It is the only run-fatal
// condition; everything else degrades to warnings and counters.
var ErrLibraryMissing = errors.New("library images directory not found")

// Options are the per-run filter settings.
type Options struct {
	ImagesOnly   bool
	MinWidth     int
	VerifyCopies bool
}

// Consolidator owns one consolidation run over a library.
type Consolidator struct {
	cfg    *config.Config
	logger *slog.Logger
	opts   Options
}

// New constructs a consolidator. A nil logger falls back to a no-op logger.
func New(cfg *config.Config, logger *slog.Logger, opts Options) *Consolidator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Consolidator{
		cfg:    cfg,
		logger: logger.With(logging.String("component", "consolidate")),
		opts:   opts,
	}
}

// Run executes the full pipeline and returns the accumulated report. The
// context is consulted between items only; file copies are not interrupted
// mid-stream.
func (c *Consolidator) Run(ctx context.Context) (*Report, error) {
	if err := c.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	itemsDir := c.cfg.ItemsDir()
	info, err := os.Stat(itemsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrLibraryMissing, itemsDir)
	}

	c.logger.Info("starting consolidation",
		logging.String("library", c.cfg.Paths.LibraryDir),
		logging.String("output", c.cfg.Paths.OutputDir),
		logging.Bool("images_only", c.opts.ImagesOnly),
		logging.Int("min_width", c.opts.MinWidth),
	)

	folderMap := c.loadFolderMap()

	entries, err := os.ReadDir(itemsDir)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	report := &Report{}
	records := make([]map[string]any, 0)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		c.processItem(filepath.Join(itemsDir, entry.Name()), folderMap, report, &records)
	}

	if err := c.writeConsolidated(records); err != nil {
		return nil, err
	}
	report.Entries = len(records)

	c.logger.Info("consolidation complete",
		logging.Int("processed", report.Processed),
		logging.Int("entries", report.Entries),
		logging.Int("skipped", report.Skipped()),
	)
	return report, nil
}

// loadFolderMap builds the folder ID to name mapping once per run. A missing
// or malformed library metadata document degrades to an empty map.
func (c *Consolidator) loadFolderMap() map[string]string {
	path := c.cfg.LibraryMetadataPath()
	folders, err := library.LoadFolders(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Debug("no library metadata, folder names unavailable", logging.String("path", path))
		} else {
			c.logger.Warn("library metadata unusable, continuing without folder names",
				logging.String("path", path), logging.Error(err))
		}
		return map[string]string{}
	}
	return foldermap.Build(folders)
}

func (c *Consolidator) processItem(dir string, folderMap map[string]string, report *Report, records *[]map[string]any) {
	sidecar := filepath.Join(dir, library.SidecarName)
	item, err := library.LoadItem(sidecar)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			report.MissingMetadata++
			c.logger.Warn("item has no metadata sidecar", logging.String("item_dir", dir))
		case errors.Is(err, library.ErrNotObject):
			report.InvalidMetadata++
			c.logger.Warn("item metadata is not an object", logging.String("item_dir", dir))
		default:
			report.InvalidMetadata++
			c.logger.Warn("item metadata unreadable", logging.String("item_dir", dir), logging.Error(err))
		}
		return
	}

	// Soft-deleted items are skipped whole, counted once per item.
	if item.IsDeleted() {
		report.DeletedItems++
		c.logger.Debug("skipping deleted item", logging.String("item_id", item.ID()))
		return
	}

	item.ResolveFolders(folderMap)

	files, err := os.ReadDir(dir)
	if err != nil {
		report.MissingMetadata++
		c.logger.Warn("item directory unreadable", logging.String("item_dir", dir), logging.Error(err))
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		c.processFile(dir, file.Name(), item, report, records)
	}
}

func (c *Consolidator) processFile(dir, name string, item *library.Item, report *Report, records *[]map[string]any) {
	reason := decide(name, item, c.opts)
	if reason != ReasonAccepted {
		report.countExclusion(reason)
		if reason == ReasonMissingID {
			c.logger.Warn("skipping file: item metadata has no id",
				logging.String("item_dir", dir), logging.String("file", name))
		} else if reason != ReasonSidecar {
			c.logger.Debug("excluding file",
				logging.String("file", name), logging.String("reason", reason.String()))
		}
		return
	}

	normalized := naming.Normalize(name, item.ID())
	src := filepath.Join(dir, name)
	dst := filepath.Join(c.cfg.ImagesOutputDir(), normalized)

	copyFile := fileutil.CopyFilePreserveTimes
	if c.opts.VerifyCopies {
		copyFile = fileutil.CopyFileVerified
	}
	if err := copyFile(src, dst); err != nil {
		report.CopyFailures++
		c.logger.Warn("could not copy file",
			logging.String("source", src), logging.String("target", dst), logging.Error(err))
		return
	}

	kind := filetype.Classify(filepath.Ext(name))
	*records = append(*records, item.Enriched(normalized, string(kind)))
	report.Processed++
	c.logger.Debug("copied file",
		logging.String("filename", normalized), logging.String("file_type", string(kind)))
}

// writeConsolidated serializes the merged metadata as an indented JSON array,
// overwriting any prior document.
func (c *Consolidator) writeConsolidated(records []map[string]any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode consolidated metadata: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(c.cfg.OutputMetadataPath(), data, 0o644); err != nil {
		return fmt.Errorf("write consolidated metadata: %w", err)
	}
	return nil
}
