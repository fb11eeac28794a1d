package placement

import (
	"net/http"

	"adbook/infras/otel"
	"adbook/internal/domains/placement/model/dto"
	"adbook/internal/domains/placement/service"
	"adbook/shared/constant"
	"adbook/shared/validator"
	"adbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Placement
	otel    otel.Otel
}

func New(service service.Placement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// DealRouter mounts the deal-scoped placement routes; the id param is the
// parent deal's.
func (handler *Handler) DealRouter(router chi.Router) {
	router.Route("/{id}/placements", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePlacement)
		routerGroup.Get("/", handler.GetPlacementsByDeal)
	})
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}", handler.GetPlacementByID)
	router.Patch("/{id}", handler.UpdatePlacement)
	router.Post("/{id}/copy", handler.CopyPlacement)
	router.Delete("/{id}", handler.DeletePlacement)
}

// CreatePlacement handles the creation of a placement under a deal.
// @Summary Create a placement
// @Description Create a placement under a deal. Currency terms are copied from the deal; the total spots, booked revenue and placement name are derived.
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param continue query bool false "Save-and-continue echo for form flows"
// @Param request body dto.CreatePlacementRequest true "Create Placement Request"
// @Success 201 {object} response.Data[dto.PlacementResponse] "Placement created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id}/placements [post]
func (handler *Handler) CreatePlacement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlacement")
	defer scope.End()

	dealID := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreatePlacementRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, dealID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create placement")

		response.WithError(writer, err)

		return
	}

	// Save-and-continue keeps the form open client-side; the flag changes
	// nothing server-side beyond this echo.
	writer.Header().Set("X-Continue", request.URL.Query().Get(constant.RequestParamContinue))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPlacementsByDeal lists a deal's placements.
// @Summary Get placements of a deal
// @Description Retrieve every placement referencing the deal.
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Data[dto.GetPlacementsResponse] "List of placements"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id}/placements [get]
func (handler *Handler) GetPlacementsByDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlacementsByDeal")
	defer scope.End()

	dealID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetByDeal(ctx, dealID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get placements")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPlacementByID retrieves a single placement.
// @Summary Get a placement by ID
// @Description Retrieve one placement with its derived figures.
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Placement ID"
// @Success 200 {object} response.Data[dto.PlacementResponse] "Placement detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id} [get]
func (handler *Handler) GetPlacementByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlacementByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get placement")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdatePlacement merges the supplied fields over an existing placement.
// @Summary Update a placement
// @Description Merge the supplied fields over a placement and re-derive its metrics and name.
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Placement ID"
// @Param request body dto.UpdatePlacementRequest true "Update Placement Request"
// @Success 200 {object} response.Data[dto.PlacementResponse] "Placement updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id} [patch]
func (handler *Handler) UpdatePlacement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePlacement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePlacementRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update placement")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CopyPlacement clones a placement.
// @Summary Copy a placement
// @Description Clone a placement under the same deal with a new id and a name suffixed " - Copy".
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Source Placement ID"
// @Success 201 {object} response.Data[dto.PlacementResponse] "Placement copied successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id}/copy [post]
func (handler *Handler) CopyPlacement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CopyPlacement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Copy(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to copy placement")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeletePlacement removes a placement.
// @Summary Delete a placement
// @Description Remove a placement from its deal.
// @Tags Placement
// @Accept json
// @Produce json
// @Param id path string true "Placement ID"
// @Success 200 {object} response.Message "Placement deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/placements/{id} [delete]
func (handler *Handler) DeletePlacement(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePlacement")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete placement")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Placement deleted successfully")
}
