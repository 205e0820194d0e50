package consolidate

import (
	"path/filepath"
	"strings"

	"libpack/internal/filetype"
	"libpack/internal/library"
)

// Reason is the typed disposition of one file within an item folder. The
// decision step returns it directly so exclusion counters never have to be
// re-derived after the fact.
type Reason int

const (
	ReasonAccepted Reason = iota
	ReasonSidecar
	ReasonThumbnail
	ReasonUnsupported
	ReasonMissingID
	ReasonLowQuality
	ReasonNonImage
)

func (r Reason) String() string {
	switch r {
	case ReasonAccepted:
		return "accepted"
	case ReasonSidecar:
		return "sidecar"
	case ReasonThumbnail:
		return "thumbnail"
	case ReasonUnsupported:
		return "unsupported extension"
	case ReasonMissingID:
		return "missing item id"
	case ReasonLowQuality:
		return "below width threshold"
	case ReasonNonImage:
		return "not an image"
	default:
		return "unknown"
	}
}

// decide runs the ordered, short-circuiting exclusion checks for one file.
// The first matching check wins.
func decide(filename string, item *library.Item, opts Options) Reason {
	if filename == library.SidecarName {
		return ReasonSidecar
	}
	if strings.Contains(strings.ToLower(filename), "thumbnail") {
		return ReasonThumbnail
	}
	ext := filepath.Ext(filename)
	if !filetype.IsSupported(ext) {
		return ReasonUnsupported
	}
	if item.ID() == "" {
		return ReasonMissingID
	}
	if opts.MinWidth > 0 && item.Width() < opts.MinWidth {
		return ReasonLowQuality
	}
	if opts.ImagesOnly && !filetype.IsImage(ext) {
		return ReasonNonImage
	}
	return ReasonAccepted
}
