// Package filetype classifies file extensions for consolidation.
//
// Two independent classifications exist: whether an extension is an image
// (drives the images-only filter and the file_type metadata field), and
// whether it is supported at all (anything else is never consolidated). Both
// sets are process-wide constants mirroring the library formats the source
// application exports.
package filetype

import "strings"

// Kind is the coarse file classification recorded in output metadata.
type Kind string

const (
	KindImage Kind = "image"
	KindOther Kind = "other"
)

var imageExtensions = []string{
	".bmp", ".gif", ".heic", ".heif", ".hif", ".icns", ".ico", ".jpeg", ".jpg",
	".png", ".svg", ".tif", ".tiff", ".webp", ".avif", ".base64", ".jfif",
	".insp", ".jxl", ".jpe",
}

var supportedExtensions = [][]string{
	// Images (.ttf appears here in the source application's export list)
	{".bmp", ".gif", ".heic", ".heif", ".hif", ".icns", ".ico", ".jpeg", ".jpg", ".png", ".svg", ".tif", ".tiff", ".ttf", ".webp", ".avif", ".base64", ".jfif", ".insp", ".jxl", ".jpe"},
	// 3D
	{".fbx", ".obj", ".3ds", ".3mf", ".dae", ".ifc", ".ply", ".stl", ".glb"},
	// Textures
	{".dds", ".exr", ".hdr", ".tga"},
	// Design source files
	{".afdesign", ".afphoto", ".afpub", ".ai", ".c4d", ".cdr", ".clip", ".dwg", ".graffle", ".idml", ".indd", ".indt", ".mindnode", ".psb", ".psd", ".psdt", ".pxd", ".principle", ".sketch", ".skt", ".skp", ".xd", ".xmind"},
	// Video
	{".m4v", ".mp4", ".webm", ".mov"},
	// Audio
	{".aac", ".flac", ".m4a", ".mp3", ".ogg", ".wav"},
	// Fonts
	{".ttc", ".otf", ".woff"},
	// Camera RAW
	{".3fr", ".arw", ".cr2", ".cr3", ".crw", ".dng", ".erf", ".mrw", ".nef", ".nrw", ".orf", ".pef", ".raf", ".raw", ".rw2", ".sr2", ".srw", ".x3f"},
	// Office documents
	{".txt", ".key", ".numbers", ".pages", ".pdf", ".potx", ".ppt", ".pptx", ".xls", ".xlsx", ".doc", ".docx", ".eddx", ".emmx"},
	// Hypertext and bookmarks
	{".html", ".mhtml", ".url"},
}

var (
	imageSet     map[string]struct{}
	supportedSet map[string]struct{}
)

func init() {
	imageSet = make(map[string]struct{}, len(imageExtensions))
	for _, ext := range imageExtensions {
		imageSet[ext] = struct{}{}
	}
	supportedSet = make(map[string]struct{})
	for _, group := range supportedExtensions {
		for _, ext := range group {
			supportedSet[ext] = struct{}{}
		}
	}
}

// IsImage reports whether ext (with leading dot, any case) is an image format.
func IsImage(ext string) bool {
	_, ok := imageSet[strings.ToLower(ext)]
	return ok
}

// IsSupported reports whether ext belongs to the fixed set of consolidatable
// formats. Unsupported extensions are always excluded regardless of filters.
func IsSupported(ext string) bool {
	_, ok := supportedSet[strings.ToLower(ext)]
	return ok
}

// Classify maps an extension to its output file_type value.
func Classify(ext string) Kind {
	if IsImage(ext) {
		return KindImage
	}
	return KindOther
}
