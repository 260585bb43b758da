package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"rsvp/internal/delivery/http/helpers"
	"rsvp/internal/domain"
)

// Guest-facing details returned by POST /confirmar-presenca.
const (
	MsgAlreadyConfirmed = "Este nome já confirmou presença!"
	MsgConfirmFailed    = "Erro ao confirmar presença. Tente novamente."
)

type ConfirmationController struct {
	Logger  *slog.Logger
	Service domain.ConfirmationService
}

func NewConfirmationController(logger *slog.Logger, svc domain.ConfirmationService) *ConfirmationController {
	return &ConfirmationController{
		Logger:  logger,
		Service: svc,
	}
}

// ConfirmRequest is the body for POST /confirmar-presenca.
type ConfirmRequest struct {
	Nome string `json:"nome" validate:"required,min=3,max=100" example:"Maria Silva"`
}

// Normalize trims the name before validation.
func (r *ConfirmRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

// Confirm godoc
// @Summary Confirm attendance
// @Description Registers the guest's attendance. The name is trimmed and must have between 3 and 100 characters. Each name can confirm only once. The organizer is notified by email in the background.
// @Tags confirmations
// @Accept json
// @Produce json
// @Param body body controllers.ConfirmRequest true "Guest name"
// @Success 200 {object} domain.Confirmation
// @Failure 400 {object} helpers.ErrorResponse "Malformed JSON or name already confirmed"
// @Failure 422 {object} helpers.ErrorResponse "Invalid name"
// @Failure 429 {object} helpers.ErrorResponse "Too many requests"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /confirmar-presenca [post]
func (c *ConfirmationController) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	conf, err := c.Service.Confirm(r.Context(), req.Nome)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyConfirmed):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, MsgAlreadyConfirmed)
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation,
				fmt.Sprintf("O nome deve ter entre %d e %d caracteres.", domain.MinNameLength, domain.MaxNameLength))
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, MsgConfirmFailed)
		}
		return
	}

	c.Logger.InfoContext(r.Context(), "attendance confirmed", "id", conf.ID, "nome", conf.Name)
	helpers.WriteJSON(w, http.StatusOK, conf)
}
