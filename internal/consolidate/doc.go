// Package consolidate implements the consolidation pipeline: it walks the
// per-item folders of a source library, filters and normalizes each media
// file, resolves folder ID references to display names, copies accepted files
// into a flat output directory, and writes one merged metadata document.
//
// Every per-item and per-file problem is recovered locally (logged and
// counted); only a missing library root aborts a run.
package consolidate
