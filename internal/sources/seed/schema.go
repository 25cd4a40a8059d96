package seed

// File is the top-level structure of a seed.yaml: playlist name to its
// ordered item list. Insertion order is playback order.
type File struct {
	Active    string                 `yaml:"active,omitempty"`
	Playlists map[string][]ItemProps `yaml:"playlists"`
}

// ItemProps is one content item as written in the seed file. Duration
// is milliseconds, matching the persisted record.
type ItemProps struct {
	Type     string `yaml:"type"`
	URL      string `yaml:"url"`
	Title    string `yaml:"title,omitempty"`
	Duration int64  `yaml:"duration"`
}
