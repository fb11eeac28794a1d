package attachment

import (
	"net/http"

	"adbook/infras/otel"
	"adbook/internal/domains/attachment/model/dto"
	"adbook/internal/domains/attachment/service"
	"adbook/shared/constant"
	"adbook/shared/failure"
	"adbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Attachment
	otel    otel.Otel
}

func New(service service.Attachment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PlacementRouter mounts the placement-scoped attachment routes; the id
// param is the placement's.
func (handler *Handler) PlacementRouter(router chi.Router) {
	router.Route("/{id}/attachments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadAttachment)
		routerGroup.Get("/", handler.GetAttachmentsByPlacement)
	})
}

func (handler *Handler) Router(router chi.Router) {
	router.Delete("/{id}", handler.DeleteAttachment)
}

// UploadAttachment stores a file against a placement.
// @Summary Upload an attachment
// @Description Upload a file for a placement. The object goes to S3 and its metadata record to the store.
// @Tags Attachment
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Placement ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} response.Data[dto.AttachmentResponse] "Attachment uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id}/attachments [post]
func (handler *Handler) UploadAttachment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAttachment")
	defer scope.End()

	placementID := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read form file")

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadAttachmentRequest{
		File:       file,
		FileHeader: fileHeader,
	}

	res, err := handler.service.Upload(ctx, req, placementID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload attachment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetAttachmentsByPlacement lists a placement's attachments.
// @Summary Get attachments of a placement
// @Description Retrieve every attachment record for the placement.
// @Tags Attachment
// @Accept json
// @Produce json
// @Param id path string true "Placement ID"
// @Success 200 {object} response.Data[dto.GetAttachmentsResponse] "List of attachments"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id}/attachments [get]
func (handler *Handler) GetAttachmentsByPlacement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttachmentsByPlacement")
	defer scope.End()

	placementID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetByPlacement(ctx, placementID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attachments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteAttachment removes an attachment record and its object.
// @Summary Delete an attachment
// @Description Remove an attachment record; the stored object is deleted in the background.
// @Tags Attachment
// @Accept json
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} response.Message "Attachment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attachments/{id} [delete]
func (handler *Handler) DeleteAttachment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAttachment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete attachment")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Attachment deleted successfully")
}
