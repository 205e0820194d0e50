package consolidate

// Report accumulates run counters. Processed counts accepted file copies;
// Entries counts records in the consolidated metadata document (equal to
// Processed on a clean run). The remaining counters record exclusions by
// reason.
type Report struct {
	Processed       int `json:"processed"`
	Entries         int `json:"entries"`
	DeletedItems    int `json:"deleted_items"`
	Thumbnails      int `json:"thumbnails"`
	Unsupported     int `json:"unsupported"`
	MissingMetadata int `json:"missing_metadata"`
	InvalidMetadata int `json:"invalid_metadata"`
	MissingID       int `json:"missing_id"`
	LowQuality      int `json:"low_quality"`
	NonImage        int `json:"non_image"`
	CopyFailures    int `json:"copy_failures"`
}

func (r *Report) countExclusion(reason Reason) {
	switch reason {
	case ReasonThumbnail:
		r.Thumbnails++
	case ReasonUnsupported:
		r.Unsupported++
	case ReasonMissingID:
		r.MissingID++
	case ReasonLowQuality:
		r.LowQuality++
	case ReasonNonImage:
		r.NonImage++
	}
}

// Skipped returns the total number of excluded files and items.
func (r *Report) Skipped() int {
	return r.DeletedItems + r.Thumbnails + r.Unsupported + r.MissingMetadata +
		r.InvalidMetadata + r.MissingID + r.LowQuality + r.NonImage + r.CopyFailures
}

// Counter pairs a display label with its value for summary rendering.
type Counter struct {
	Label string
	Value int
}

// Counters returns the report in fixed display order.
func (r *Report) Counters() []Counter {
	return []Counter{
		{"Files copied", r.Processed},
		{"Metadata entries", r.Entries},
		{"Deleted items", r.DeletedItems},
		{"Thumbnails", r.Thumbnails},
		{"Unsupported files", r.Unsupported},
		{"Missing metadata", r.MissingMetadata},
		{"Invalid metadata", r.InvalidMetadata},
		{"Missing item id", r.MissingID},
		{"Below width threshold", r.LowQuality},
		{"Non-image files", r.NonImage},
		{"Copy failures", r.CopyFailures},
	}
}
