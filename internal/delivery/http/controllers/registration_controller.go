package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// RegisterRequest is the request body for POST /register/{eventID}.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Records a registration for the event. The event must exist; the same email may register more than once.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param registration body RegisterRequest true "Attendee name and email"
// @Success 201 {object} domain.Registration
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /register/{eventID} [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), r.PathValue("eventID"), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to register for event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, reg)
}

// ListByEvent godoc
// @Summary List registrations for an event
// @Description Returns the event's registrations ordered by most recent first. Unknown event ids return an empty array.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {array} domain.Registration
// @Failure 500 {object} helpers.ErrorResponse
// @Router /registrations/{eventID} [get]
func (c *RegistrationController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListByEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, regs)
}
