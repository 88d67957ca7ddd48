package router

import (
	"tourbase/internal/handlers/booking"
	"tourbase/internal/handlers/calendarsync"
	"tourbase/internal/handlers/pending"
	"tourbase/internal/handlers/pricing"
	"tourbase/internal/handlers/unit"
	"tourbase/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Unit         unit.Handler
	Booking      booking.Handler
	Pending      pending.Handler
	CalendarSync calendarsync.Handler
	Pricing      pricing.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.CalendarSync.PublicRouter(routerGroup)

		routerGroup.Group(func(authedGroup chi.Router) {
			authedGroup.Use(r.Auth.APIKey)
			authedGroup.Use(r.Auth.Auth)

			r.DomainHandlers.Unit.Router(authedGroup)
			r.DomainHandlers.Booking.Router(authedGroup)
			r.DomainHandlers.Pending.Router(authedGroup)
			r.DomainHandlers.CalendarSync.Router(authedGroup)
			r.DomainHandlers.Pricing.Router(authedGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
