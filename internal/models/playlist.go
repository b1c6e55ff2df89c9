package models

// PlaylistItem is a denormalized snapshot of a media asset at the moment it
// was added to a playlist. It does not follow later changes to the asset;
// MediaID is set only when the item was associated from an existing record.
type PlaylistItem struct {
	ID      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	URL     string `bson:"url" json:"url"`
	MediaID string `bson:"media_id,omitempty" json:"media_id,omitempty"`
}

type Playlist struct {
	ID     string         `bson:"_id" json:"id"`
	Name   string         `bson:"name" json:"name"`
	Midias []PlaylistItem `bson:"midias" json:"midias"`
}
