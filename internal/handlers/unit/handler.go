package unit

import (
	"net/http"
	"tourbase/infras/otel"
	"tourbase/internal/domains/unit/model"
	"tourbase/internal/domains/unit/model/dto"
	"tourbase/internal/domains/unit/service"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/validator"
	"tourbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Unit
	otel    otel.Otel
}

func New(service service.Unit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/units", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUnit)
		routerGroup.Get("/", handler.GetUnits)
		routerGroup.Get("/{id}", handler.GetUnitByID)
		routerGroup.Patch("/{id}", handler.UpdateUnit)
		routerGroup.Delete("/{id}", handler.DeleteUnit)
	})
}

// CreateUnit registers a rentable unit.
// @Summary Create a new unit
// @Description Register a rentable unit with its base price and capacity.
// @Tags Unit
// @Accept json
// @Produce json
// @Param request body dto.CreateUnitRequest true "Create Unit Request"
// @Success 201 {object} response.Message "Unit created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [post]
// @Security BearerAuth
func (handler *Handler) CreateUnit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUnit")
	defer scope.End()

	req := dto.CreateUnitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create unit")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Unit created successfully")

	response.WithMessage(writer, http.StatusCreated, "Unit created successfully")
}

// GetUnits retrieves all units.
// @Summary Get all units
// @Description Retrieve all units with optional filtering and pagination.
// @Tags Unit
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by unit type (room, apartment, house)"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetUnitsResponse] "List of units"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units [get]
func (handler *Handler) GetUnits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	unitType := r.URL.Query().Get(model.FieldType)
	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if unitType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    unitType,
			Table:    model.TableName,
		})
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	units, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get units")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, units)
}

// GetUnitByID retrieves a unit by its ID.
// @Summary Get a unit by ID
// @Description Retrieve a unit by its unique identifier.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} response.Data[dto.UnitResponse] "Unit details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [get]
func (handler *Handler) GetUnitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnitByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	unit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unit by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, unit)
}

// UpdateUnit patches a unit.
// @Summary Update a unit
// @Description Update a unit's details. Only provided fields are changed.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body dto.UpdateUnitRequest true "Update Unit Request"
// @Success 200 {object} response.Message "Unit updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUnitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update unit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit updated successfully")

	response.WithMessage(w, http.StatusOK, "Unit updated successfully")
}

// DeleteUnit removes a unit.
// @Summary Delete a unit
// @Description Remove a unit from the inventory.
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} response.Message "Unit deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/units/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete unit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unit deleted successfully")

	response.WithMessage(w, http.StatusOK, "Unit deleted successfully")
}
