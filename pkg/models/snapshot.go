package models

// SnapshotVersion tags exported snapshot documents. Import carries the tag
// through but does not currently enforce it.
const SnapshotVersion = "1.0"

// Snapshot is the self-describing export document bundling all three slots
// plus metadata. ExportDate is an RFC 3339 timestamp string.
type Snapshot struct {
	Tasks      []Task     `json:"tasks"`
	Categories []Category `json:"categories"`
	Settings   *Settings  `json:"settings,omitempty"`
	ExportDate string     `json:"exportDate"`
	Version    string     `json:"version"`
}
