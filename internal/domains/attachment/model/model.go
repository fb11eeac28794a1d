package model

import (
	"adbook/shared/model"
)

const (
	EntityName = "attachment"

	// S3Directory is the key prefix attachment objects live under in the
	// bucket, suffixed with the owning placement id.
	S3Directory = "placements"
)

type Attachment struct {
	ID          string `json:"id"`
	PlacementID string `json:"placement_id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	model.Metadata
}

func (a Attachment) GetID() string {
	return a.ID
}

// Directory is the bucket directory the attachment's object lives in.
func (a Attachment) Directory() string {
	return S3Directory + "/" + a.PlacementID
}
