package calendarsync

import (
	"net/http"
	"tourbase/infras/otel"
	"tourbase/internal/domains/calendarsync/model"
	"tourbase/internal/domains/calendarsync/model/dto"
	"tourbase/internal/domains/calendarsync/service"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/validator"
	"tourbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CalendarSync
	otel    otel.Otel
}

func New(service service.CalendarSync, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar-syncs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCalendarSync)
		routerGroup.Get("/", handler.GetCalendarSyncs)
		routerGroup.Get("/{id}", handler.GetCalendarSyncByID)
		routerGroup.Patch("/{id}", handler.UpdateCalendarSync)
		routerGroup.Delete("/{id}", handler.DeleteCalendarSync)
		routerGroup.Post("/{id}/sync", handler.SyncNow)
	})
}

// PublicRouter exposes the iCal feed without authentication so external
// platforms can poll it.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/units/{unit_id}/calendar.ics", handler.ExportFeed)
}

// CreateCalendarSync binds a unit to an external iCal feed.
// @Summary Create a calendar sync
// @Description Bind a unit to an external platform's iCal feed.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param request body dto.CreateCalendarSyncRequest true "Create Calendar Sync Request"
// @Success 201 {object} response.Data[dto.CalendarSyncResponse] "Calendar sync created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs [post]
// @Security BearerAuth
func (handler *Handler) CreateCalendarSync(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCalendarSync")
	defer scope.End()

	req := dto.CreateCalendarSyncRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	sync, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create calendar sync")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Calendar sync created successfully")

	response.WithJSON(writer, http.StatusCreated, sync)
}

// GetCalendarSyncs retrieves calendar syncs.
// @Summary Get all calendar syncs
// @Description Retrieve calendar syncs with optional filtering and pagination.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param unit_id query string false "Filter by unit ID"
// @Param platform query string false "Filter by platform (airbnb, booking, other)"
// @Success 200 {object} response.Data[dto.GetCalendarSyncsResponse] "List of calendar syncs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs [get]
// @Security BearerAuth
func (handler *Handler) GetCalendarSyncs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarSyncs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	unitID := r.URL.Query().Get(model.FieldUnitID)
	platform := r.URL.Query().Get(model.FieldPlatform)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if unitID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUnitID,
			Operator: gDto.FilterOperatorEq,
			Value:    unitID,
			Table:    model.TableName,
		})
	}

	if platform != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPlatform,
			Operator: gDto.FilterOperatorEq,
			Value:    platform,
			Table:    model.TableName,
		})
	}

	syncs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar syncs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, syncs)
}

// GetCalendarSyncByID retrieves a calendar sync by its ID.
// @Summary Get a calendar sync by ID
// @Description Retrieve a calendar sync together with its last run status.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param id path string true "Calendar Sync ID"
// @Success 200 {object} response.Data[dto.CalendarSyncResponse] "Calendar sync details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCalendarSyncByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarSyncByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	sync, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar sync by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sync)
}

// UpdateCalendarSync patches a calendar sync.
// @Summary Update a calendar sync
// @Description Update the feed URL or toggle the sync on and off.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param id path string true "Calendar Sync ID"
// @Param request body dto.UpdateCalendarSyncRequest true "Update Calendar Sync Request"
// @Success 200 {object} response.Message "Calendar sync updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCalendarSync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCalendarSync")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCalendarSyncRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update calendar sync")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar sync updated successfully")

	response.WithMessage(w, http.StatusOK, "Calendar sync updated successfully")
}

// DeleteCalendarSync removes a sync and its imported busy blocks.
// @Summary Delete a calendar sync
// @Description Remove a sync together with every busy block it imported.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param id path string true "Calendar Sync ID"
// @Success 200 {object} response.Message "Calendar sync deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCalendarSync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCalendarSync")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete calendar sync")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar sync deleted successfully")

	response.WithMessage(w, http.StatusOK, "Calendar sync deleted successfully")
}

// SyncNow reconciles one feed immediately.
// @Summary Run a calendar sync now
// @Description Fetch the external feed and reconcile busy blocks. Concurrent runs for the same sync share one execution.
// @Tags CalendarSync
// @Accept json
// @Produce json
// @Param id path string true "Calendar Sync ID"
// @Success 200 {object} response.Data[dto.SyncResult] "Reconciliation result"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar-syncs/{id}/sync [post]
// @Security BearerAuth
func (handler *Handler) SyncNow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncNow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	result, err := handler.service.SyncNow(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run calendar sync")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar sync completed successfully")

	response.WithJSON(w, http.StatusOK, result)
}

// ExportFeed renders the unit's confirmed stays as an iCal document.
// @Summary Export a unit's calendar
// @Description Render the unit's confirmed future stays as an iCal feed for external platforms.
// @Tags CalendarSync
// @Produce plain
// @Param unit_id path string true "Unit ID"
// @Success 200 {string} string "iCal document"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{unit_id}/calendar.ics [get]
func (handler *Handler) ExportFeed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportFeed")
	defer scope.End()

	unitID := chi.URLParam(r, constant.RequestParamUnitID)

	feed, err := handler.service.ExportFeed(ctx, unitID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export calendar feed")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCalendar)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}
