package redis

const (
	// KeyPlaylists holds the JSON object mapping playlist name to its
	// ordered item array.
	KeyPlaylists = "foyer:playlists"
	// KeyCurrentPlaylist holds the name of the active playlist. It is
	// always a key of the playlists object.
	KeyCurrentPlaylist = "foyer:currentPlaylist"
	// KeyLegacyPlaylist is the pre-multi-playlist record: a bare item
	// array. It is read once at startup, migrated into the default
	// playlist and then deleted.
	KeyLegacyPlaylist = "foyer:playlist"
)
