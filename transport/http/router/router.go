package router

import (
	"adbook/internal/handlers/attachment"
	"adbook/internal/handlers/booking"
	"adbook/internal/handlers/deal"
	"adbook/internal/handlers/placement"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Deal       deal.Handler
	Placement  placement.Handler
	Booking    booking.Handler
	Attachment attachment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/deals", func(dealGroup chi.Router) {
			r.DomainHandlers.Deal.Router(dealGroup)
			r.DomainHandlers.Placement.DealRouter(dealGroup)
			r.DomainHandlers.Booking.Router(dealGroup)
		})

		routerGroup.Route("/placements", func(placementGroup chi.Router) {
			r.DomainHandlers.Placement.Router(placementGroup)
			r.DomainHandlers.Attachment.PlacementRouter(placementGroup)
		})

		routerGroup.Route("/attachments", func(attachmentGroup chi.Router) {
			r.DomainHandlers.Attachment.Router(attachmentGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
