package deal

import (
	"net/http"

	"adbook/infras/otel"
	"adbook/internal/domains/deal/model/dto"
	"adbook/internal/domains/deal/service"
	"adbook/shared/constant"
	gDto "adbook/shared/dto"
	"adbook/shared/validator"
	"adbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Deal
	otel    otel.Otel
}

func New(service service.Deal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateDeal)
	router.Get("/", handler.GetDeals)
	router.Get("/{id}", handler.GetDealByID)
	router.Patch("/{id}", handler.UpdateDeal)
	router.Delete("/{id}", handler.DeleteDeal)
}

// CreateDeal handles the creation of a new deal.
// @Summary Create a new deal
// @Description Create a new advertising deal. Revenue figures are derived from the booked amount, conversion rate and deal currency.
// @Tags Deal
// @Accept json
// @Produce json
// @Param request body dto.CreateDealRequest true "Create Deal Request"
// @Success 201 {object} response.Data[dto.DealResponse] "Deal created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals [post]
func (handler *Handler) CreateDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDeal")
	defer scope.End()

	req := dto.CreateDealRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create deal")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDeals retrieves all deals.
// @Summary Get all deals
// @Description Retrieve all deals with pagination, newest first by default.
// @Tags Deal
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetDealsResponse] "List of deals"
// @Failure 500 {object} response.Error
// @Router /v1/deals [get]
func (handler *Handler) GetDeals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDealByID retrieves a single deal.
// @Summary Get a deal by ID
// @Description Retrieve one deal with its derived revenue figures.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Data[dto.DealResponse] "Deal detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [get]
func (handler *Handler) GetDealByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDealByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deal")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateDeal merges the supplied fields over an existing deal.
// @Summary Update a deal
// @Description Merge the supplied fields over an existing deal and re-derive its revenue figures.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body dto.UpdateDealRequest true "Update Deal Request"
// @Success 200 {object} response.Data[dto.DealResponse] "Deal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [patch]
func (handler *Handler) UpdateDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDeal")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateDealRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update deal")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteDeal removes a deal without placements.
// @Summary Delete a deal
// @Description Delete a deal. Rejected with a conflict while placements still reference it.
// @Tags Deal
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Message "Deal deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id} [delete]
func (handler *Handler) DeleteDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDeal")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete deal")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Deal deleted successfully")
}
