package service

import (
	"context"
	"errors"
	"fmt"

	"adbook/config"
	"adbook/infras/otel"
	"adbook/infras/s3"
	"adbook/internal/domains/attachment/model"
	"adbook/internal/domains/attachment/model/dto"
	"adbook/internal/domains/attachment/repository"
	placementRepo "adbook/internal/domains/placement/repository"
	"adbook/shared/constant"
	"adbook/shared/failure"
	gRepo "adbook/shared/repository"

	"github.com/rs/zerolog/log"
)

type Attachment interface {
	Upload(ctx context.Context, req dto.UploadAttachmentRequest, placementID string) (dto.AttachmentResponse, error)
	GetByPlacement(ctx context.Context, placementID string) (dto.GetAttachmentsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Attachment
	placementRepo placementRepo.Placement
	cfg           *config.Config
	otel          otel.Otel
	s3            s3.S3
}

func New(repo repository.Attachment, placementRepo placementRepo.Placement, cfg *config.Config, otel otel.Otel, s3 s3.S3) Attachment {
	return &serviceImpl{
		repo:          repo,
		placementRepo: placementRepo,
		cfg:           cfg,
		otel:          otel,
		s3:            s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadAttachmentRequest, placementID string) (res dto.AttachmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.placementRepo.Exist(ctx, placementID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if placement exists")

		return res, fmt.Errorf("failed to check if placement exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("placement not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := model.S3Directory + "/" + placementID

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.File, req.FileHeader, req.FileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	attachment := req.ToModel(placementID, url, user)

	if err = s.repo.Upsert(ctx, attachment); err != nil {
		log.Error().Err(err).Msg("failed to save attachment")

		return res, fmt.Errorf("failed to save attachment: %w", err)
	}

	res.FromModel(attachment)

	return res, nil
}

func (s *serviceImpl) GetByPlacement(ctx context.Context, placementID string) (res dto.GetAttachmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.GetByPlacement")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.placementRepo.Exist(ctx, placementID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if placement exists")

		return res, fmt.Errorf("failed to check if placement exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("placement not found") // nolint:wrapcheck
	}

	attachments, err := s.repo.GetByPlacement(ctx, placementID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attachments")

		return res, fmt.Errorf("failed to get attachments: %w", err)
	}

	res.FromModels(attachments)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	attachment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return failure.NotFound("attachment not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get attachment")

		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete attachment")

		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName
		if err := s.s3.DeleteFile(c, bucketName, attachment.Directory(), attachment.FileName); err != nil {
			log.Error().Err(err).Str("id", attachment.ID).Msg("failed to delete attachment object from S3")
		}
	}()

	return nil
}
