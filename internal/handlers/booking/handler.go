package booking

import (
	"net/http"

	"adbook/infras/otel"
	"adbook/internal/domains/booking/model/dto"
	"adbook/internal/domains/booking/service"
	"adbook/shared/constant"
	"adbook/shared/validator"
	"adbook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the deal-scoped booking routes; the id param is the deal's.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}/booking-grid", handler.OpenBookingGrid)
	router.Put("/{id}/bookings", handler.SaveBookingGrid)
	router.Get("/{id}/bookings", handler.GetBookingsByDeal)
}

// OpenBookingGrid builds the editable grid for a deal.
// @Summary Open the booking grid
// @Description Build the day-by-day grid for the placement's date range, loading any previously saved rows fitted to the current axis.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param placement_id query string true "Placement whose date range defines the grid axis"
// @Success 200 {object} response.Data[dto.GridResponse] "Booking grid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id}/booking-grid [get]
func (handler *Handler) OpenBookingGrid(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenBookingGrid")
	defer scope.End()

	dealID := chi.URLParam(request, constant.RequestParamID)
	placementID := request.URL.Query().Get(constant.RequestParamPlacementID)

	res, err := handler.service.OpenGrid(ctx, dealID, placementID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking grid")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SaveBookingGrid replaces a deal's saved booking rows.
// @Summary Save the booking grid
// @Description Validate and save the grid's rows, replacing whatever was saved for the deal before. Row totals are recomputed server-side.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body dto.SaveGridRequest true "Save Grid Request"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Booking grid saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id}/bookings [put]
func (handler *Handler) SaveBookingGrid(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveBookingGrid")
	defer scope.End()

	dealID := chi.URLParam(request, constant.RequestParamID)

	req := dto.SaveGridRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SaveGrid(ctx, req, dealID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save booking grid")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking grid saved by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingsByDeal reads a deal's saved booking rows.
// @Summary Get bookings of a deal
// @Description Retrieve the deal's saved booking rows with their derived totals.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Saved booking rows"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/deals/{id}/bookings [get]
func (handler *Handler) GetBookingsByDeal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByDeal")
	defer scope.End()

	dealID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetByDeal(ctx, dealID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
