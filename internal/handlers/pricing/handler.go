package pricing

import (
	"net/http"
	"tourbase/infras/otel"
	"tourbase/internal/domains/pricing/model/dto"
	"tourbase/internal/domains/pricing/service"
	"tourbase/shared/constant"
	"tourbase/shared/daterange"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"
	"tourbase/shared/validator"
	"tourbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	engine  service.Engine
	otel    otel.Otel
}

func New(service service.Pricing, engine service.Engine, otel otel.Otel) Handler {
	return Handler{
		service: service,
		engine:  engine,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Route("/profiles", func(profileGroup chi.Router) {
			profileGroup.Post("/", handler.CreateProfile)
			profileGroup.Get("/", handler.GetProfiles)
			profileGroup.Get("/{id}", handler.GetProfileByID)
			profileGroup.Patch("/{id}", handler.UpdateProfile)
			profileGroup.Delete("/{id}", handler.DeleteProfile)
			profileGroup.Post("/{id}/rules", handler.CreateRule)
			profileGroup.Get("/{id}/rules", handler.GetRules)
		})

		routerGroup.Route("/rules", func(ruleGroup chi.Router) {
			ruleGroup.Patch("/{id}", handler.UpdateRule)
			ruleGroup.Delete("/{id}", handler.DeleteRule)
		})

		routerGroup.Route("/units/{unit_id}", func(unitGroup chi.Router) {
			unitGroup.Get("/price", handler.GetPrice)
			unitGroup.Get("/calendar", handler.GetPriceCalendar)
			unitGroup.Get("/logs", handler.GetCalculationLogs)
			unitGroup.Post("/toggle", handler.ToggleDynamic)
		})
	})
}

// CreateProfile creates a pricing profile.
// @Summary Create a pricing profile
// @Description Create a pricing profile with optional clamp bounds.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreatePricingProfileRequest true "Create Pricing Profile Request"
// @Success 201 {object} response.Data[dto.PricingProfileResponse] "Pricing profile created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles [post]
// @Security BearerAuth
func (handler *Handler) CreateProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProfile")
	defer scope.End()

	req := dto.CreatePricingProfileRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	profile, err := handler.service.CreateProfile(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing profile")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pricing profile created successfully")

	response.WithJSON(writer, http.StatusCreated, profile)
}

// GetProfiles retrieves pricing profiles.
// @Summary Get all pricing profiles
// @Description Retrieve pricing profiles with pagination.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPricingProfilesResponse] "List of pricing profiles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles [get]
// @Security BearerAuth
func (handler *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	profiles, err := handler.service.GetProfiles(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing profiles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profiles)
}

// GetProfileByID retrieves a pricing profile by its ID.
// @Summary Get a pricing profile by ID
// @Description Retrieve a single pricing profile.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Profile ID"
// @Success 200 {object} response.Data[dto.PricingProfileResponse] "Pricing profile details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfileByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	profile, err := handler.service.GetProfile(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing profile by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile patches a pricing profile.
// @Summary Update a pricing profile
// @Description Update a pricing profile's name, mode, bounds, or enabled flag.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Profile ID"
// @Param request body dto.UpdatePricingProfileRequest true "Update Pricing Profile Request"
// @Success 200 {object} response.Message "Pricing profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProfile(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing profile updated successfully")

	response.WithMessage(w, http.StatusOK, "Pricing profile updated successfully")
}

// DeleteProfile removes a pricing profile and its rules.
// @Summary Delete a pricing profile
// @Description Remove a pricing profile together with its rules.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Profile ID"
// @Success 200 {object} response.Message "Pricing profile deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteProfile(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing profile deleted successfully")

	response.WithMessage(w, http.StatusOK, "Pricing profile deleted successfully")
}

// CreateRule adds a rule to a pricing profile.
// @Summary Create a pricing rule
// @Description Add a rule to a pricing profile. The condition payload is validated against its condition type.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Profile ID"
// @Param request body dto.CreatePricingRuleRequest true "Create Pricing Rule Request"
// @Success 201 {object} response.Data[dto.PricingRuleResponse] "Pricing rule created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles/{id}/rules [post]
// @Security BearerAuth
func (handler *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRule")
	defer scope.End()

	profileID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreatePricingRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.ProfileID = profileID

	rule, err := handler.service.CreateRule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule created successfully")

	response.WithJSON(w, http.StatusCreated, rule)
}

// GetRules lists a profile's rules in evaluation order.
// @Summary Get a profile's pricing rules
// @Description Retrieve the profile's rules sorted by evaluation order.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Profile ID"
// @Success 200 {object} response.Data[dto.GetPricingRulesResponse] "List of pricing rules"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/profiles/{id}/rules [get]
// @Security BearerAuth
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	profileID := chi.URLParam(r, constant.RequestParamID)

	rules, err := handler.service.GetRules(ctx, profileID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// UpdateRule patches a pricing rule.
// @Summary Update a pricing rule
// @Description Update a rule's condition, action, priority, or enabled flag.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Rule ID"
// @Param request body dto.UpdatePricingRuleRequest true "Update Pricing Rule Request"
// @Success 200 {object} response.Message "Pricing rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/rules/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRule(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule updated successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule updated successfully")
}

// DeleteRule removes a pricing rule.
// @Summary Delete a pricing rule
// @Description Remove a pricing rule.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing Rule ID"
// @Success 200 {object} response.Message "Pricing rule deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteRule(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule deleted successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule deleted successfully")
}

// GetPrice calculates the effective price for one night.
// @Summary Calculate a unit's price for a date
// @Description Run the rule engine for a single date and return the price breakdown.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.PriceResponse] "Price breakdown"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/units/{unit_id}/price [get]
// @Security BearerAuth
func (handler *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrice")
	defer scope.End()

	unitID := chi.URLParam(r, constant.RequestParamUnitID)

	date, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse date query param")

		response.WithError(w, failure.BadRequestFromString("date must be a valid YYYY-MM-DD date"))

		return
	}

	price, err := handler.engine.CalculatePrice(ctx, unitID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, price)
}

// GetPriceCalendar calculates effective prices over a date range.
// @Summary Calculate a unit's price calendar
// @Description Run the rule engine for every date in the range.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param from query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string true "End date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} response.Data[dto.PriceCalendarResponse] "Price calendar"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/units/{unit_id}/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetPriceCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriceCalendar")
	defer scope.End()

	unitID := chi.URLParam(r, constant.RequestParamUnitID)

	from, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamFromDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse from query param")

		response.WithError(w, failure.BadRequestFromString("from must be a valid YYYY-MM-DD date"))

		return
	}

	to, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamToDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse to query param")

		response.WithError(w, failure.BadRequestFromString("to must be a valid YYYY-MM-DD date"))

		return
	}

	calendar, err := handler.engine.PriceCalendar(ctx, unitID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate price calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, calendar)
}

// GetCalculationLogs lists persisted price calculations.
// @Summary Get a unit's price calculation logs
// @Description Retrieve persisted price calculations for auditing.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param from query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string true "End date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} response.Data[[]dto.PriceCalculationLogResponse] "Price calculation logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/units/{unit_id}/logs [get]
// @Security BearerAuth
func (handler *Handler) GetCalculationLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalculationLogs")
	defer scope.End()

	unitID := chi.URLParam(r, constant.RequestParamUnitID)

	from, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamFromDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse from query param")

		response.WithError(w, failure.BadRequestFromString("from must be a valid YYYY-MM-DD date"))

		return
	}

	to, err := daterange.ParseDay(r.URL.Query().Get(constant.RequestParamToDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse to query param")

		response.WithError(w, failure.BadRequestFromString("to must be a valid YYYY-MM-DD date"))

		return
	}

	logs, err := handler.engine.Logs(ctx, unitID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price calculation logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// ToggleDynamic switches dynamic pricing on or off for a unit.
// @Summary Toggle dynamic pricing for a unit
// @Description Enable or disable dynamic pricing for a unit.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param request body dto.ToggleDynamicPricingRequest true "Toggle Dynamic Pricing Request"
// @Success 200 {object} response.Message "Dynamic pricing toggled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/units/{unit_id}/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleDynamic(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleDynamic")
	defer scope.End()

	unitID := chi.URLParam(r, constant.RequestParamUnitID)

	req := dto.ToggleDynamicPricingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ToggleDynamic(ctx, unitID, req.Enabled); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle dynamic pricing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dynamic pricing toggled successfully")

	response.WithMessage(w, http.StatusOK, "Dynamic pricing toggled successfully")
}
