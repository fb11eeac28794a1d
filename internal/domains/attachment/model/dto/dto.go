package dto

import (
	"mime/multipart"

	"adbook/internal/domains/attachment/model"
	"adbook/shared/constant"
	gDto "adbook/shared/dto"
	"adbook/shared/id"
	gModel "adbook/shared/model"
	"adbook/shared/timezone"
)

type UploadAttachmentRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (u *UploadAttachmentRequest) ToModel(placementID, url, user string) model.Attachment {
	return model.Attachment{
		ID:          id.New(constant.AttachmentIDPrefix),
		PlacementID: placementID,
		FileName:    u.FileHeader.Filename,
		URL:         url,
		ContentType: u.FileHeader.Header.Get(constant.RequestHeaderContentType),
		Size:        u.FileHeader.Size,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AttachmentResponse struct {
	ID          string `json:"id"`
	PlacementID string `json:"placement_id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	gDto.Metadata
}

func (r *AttachmentResponse) FromModel(attachment model.Attachment) {
	r.ID = attachment.ID
	r.PlacementID = attachment.PlacementID
	r.FileName = attachment.FileName
	r.URL = attachment.URL
	r.ContentType = attachment.ContentType
	r.Size = attachment.Size
	r.Metadata.FromModel(attachment.Metadata)
}

type GetAttachmentsResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAttachmentsResponse) FromModels(models []model.Attachment) {
	r.TotalData = len(models)

	r.Attachments = make([]AttachmentResponse, len(models))
	for i, mod := range models {
		r.Attachments[i].FromModel(mod)
	}
}
