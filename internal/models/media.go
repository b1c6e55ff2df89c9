package models

import (
	"strings"
	"time"
)

// MediaType classifies an asset by the MIME type it was uploaded with.
type MediaType string

const (
	TypeImage MediaType = "image"
	TypeVideo MediaType = "video"
	TypeText  MediaType = "text"
)

// TypeFromContentType maps a declared MIME type to a MediaType.
// Anything that is neither image/* nor video/* is treated as text.
func TypeFromContentType(ct string) MediaType {
	switch {
	case strings.HasPrefix(ct, "image/"):
		return TypeImage
	case strings.HasPrefix(ct, "video/"):
		return TypeVideo
	default:
		return TypeText
	}
}

type Media struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"` // original filename
	URL         string    `bson:"url" json:"url"`   // public URL, immutable after creation
	Thumbnail   string    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Type        MediaType `bson:"type" json:"type"`
	Size        int64     `bson:"size" json:"size"`
	ContentType string    `bson:"content_type" json:"content_type"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
