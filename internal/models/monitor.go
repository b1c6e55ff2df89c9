package models

// Monitor is a display endpoint bound to at most one playlist. PlaylistID is
// a weak reference: assigning never checks the playlist exists and deleting
// a playlist leaves the reference dangling.
type Monitor struct {
	ID         string `bson:"_id" json:"id"`
	Name       string `bson:"name" json:"name"`
	PlaylistID string `bson:"playlist,omitempty" json:"playlist_id,omitempty"`
}

// MonitorView is a monitor with its playlist reference resolved at read
// time. Playlist is nil when the monitor is unassigned or the reference
// points at a deleted playlist.
type MonitorView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Playlist *Playlist `json:"playlist,omitempty"`
}
