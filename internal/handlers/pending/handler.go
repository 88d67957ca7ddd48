package pending

import (
	"net/http"
	"tourbase/infras/otel"
	"tourbase/internal/domains/pending/model"
	"tourbase/internal/domains/pending/model/dto"
	"tourbase/internal/domains/pending/service"
	"tourbase/shared/constant"
	gDto "tourbase/shared/dto"
	"tourbase/shared/failure"
	"tourbase/shared/validator"
	"tourbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// maxScreenshotSize bounds the multipart memory buffer for payment proofs.
const maxScreenshotSize = 10 << 20

type Handler struct {
	service service.PendingBooking
	otel    otel.Otel
}

func New(service service.PendingBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pending-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePendingBooking)
		routerGroup.Get("/", handler.GetPendingBookings)
		routerGroup.Get("/{id}", handler.GetPendingBookingByID)
		routerGroup.Post("/{id}/screenshot", handler.AttachScreenshot)
		routerGroup.Post("/{id}/verify", handler.VerifyPendingBooking)
		routerGroup.Post("/{id}/approve", handler.ApprovePendingBooking)
		routerGroup.Post("/{id}/reject", handler.RejectPendingBooking)
	})
}

// CreatePendingBooking registers a soft hold for a stay.
// @Summary Create a pending booking
// @Description Register a booking request awaiting payment verification. The dates are not reserved yet.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param request body dto.CreatePendingBookingRequest true "Create Pending Booking Request"
// @Success 201 {object} response.Data[dto.PendingBookingResponse] "Pending booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings [post]
func (handler *Handler) CreatePendingBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePendingBooking")
	defer scope.End()

	req := dto.CreatePendingBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	pending, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pending booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pending booking created successfully")

	response.WithJSON(writer, http.StatusCreated, pending)
}

// GetPendingBookings retrieves pending bookings.
// @Summary Get all pending bookings
// @Description Retrieve pending bookings with optional filtering and pagination.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param unit_id query string false "Filter by unit ID"
// @Param verification_status query string false "Filter by verification status"
// @Success 200 {object} response.Data[dto.GetPendingBookingsResponse] "List of pending bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetPendingBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	unitID := r.URL.Query().Get(model.FieldUnitID)
	status := r.URL.Query().Get(model.FieldVerificationStatus)

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

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVerificationStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	pendings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pendings)
}

// GetPendingBookingByID retrieves a pending booking by its ID.
// @Summary Get a pending booking by ID
// @Description Retrieve a pending booking by its unique identifier.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param id path string true "Pending Booking ID"
// @Success 200 {object} response.Data[dto.PendingBookingResponse] "Pending booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPendingBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pending, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pending)
}

// AttachScreenshot uploads a payment screenshot for a pending booking.
// @Summary Attach a payment screenshot
// @Description Upload the guest's payment proof. Moves the request to awaiting_verification.
// @Tags PendingBooking
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Pending Booking ID"
// @Param screenshot formData file true "Payment screenshot"
// @Success 200 {object} response.Data[dto.PendingBookingResponse] "Screenshot attached successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings/{id}/screenshot [post]
func (handler *Handler) AttachScreenshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachScreenshot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(maxScreenshotSize); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("request is not valid multipart form data"))

		return
	}

	file, fileHeader, err := r.FormFile("screenshot")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("screenshot file is required"))

		return
	}
	defer file.Close()

	pending, err := handler.service.AttachScreenshot(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach payment screenshot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment screenshot attached successfully")

	response.WithJSON(w, http.StatusOK, pending)
}

// VerifyPendingBooking marks the payment proof as checked.
// @Summary Verify a pending booking
// @Description Mark the payment proof as verified by an operator.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param id path string true "Pending Booking ID"
// @Param request body dto.VerifyPendingBookingRequest false "Verification notes"
// @Success 200 {object} response.Message "Pending booking verified successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyPendingBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPendingBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.VerifyPendingBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Verify(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify pending booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pending booking verified successfully")

	response.WithMessage(w, http.StatusOK, "Pending booking verified successfully")
}

// ApprovePendingBooking promotes a verified request into a confirmed booking.
// @Summary Approve a pending booking
// @Description Promote a verified request into a confirmed booking. Availability is re-checked; a conflict leaves the request untouched.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param id path string true "Pending Booking ID"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Booking created from pending request"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApprovePendingBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApprovePendingBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve pending booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pending booking approved successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// RejectPendingBooking closes a pending request.
// @Summary Reject a pending booking
// @Description Close the request without touching availability.
// @Tags PendingBooking
// @Accept json
// @Produce json
// @Param id path string true "Pending Booking ID"
// @Param request body dto.RejectPendingBookingRequest false "Rejection notes"
// @Success 200 {object} response.Message "Pending booking rejected successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pending-bookings/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectPendingBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectPendingBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RejectPendingBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reject(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject pending booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pending booking rejected successfully")

	response.WithMessage(w, http.StatusOK, "Pending booking rejected successfully")
}
