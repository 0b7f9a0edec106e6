package model

type Category struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Count       int    `json:"count"`
}

type Emoticon struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// UploadResult describes a single stored image.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// EntryIssue records one archive entry that did not produce a file.
type EntryIssue struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

// ArchiveSummary is the per-entry breakdown of an archive ingestion.
// Entries are processed in natural sort order; a skipped or failed
// entry never aborts the rest of the batch.
type ArchiveSummary struct {
	Uploaded []string     `json:"uploaded"`
	Skipped  []EntryIssue `json:"skipped,omitempty"`
	Failed   []EntryIssue `json:"failed,omitempty"`
}
