package controllers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"rsvp/internal/delivery/http/helpers"
	"rsvp/internal/delivery/http/middleware"
	"rsvp/internal/domain"

	"github.com/samber/lo"
)

const (
	listDateLayout    = "02/01/2006 15:04"
	csvFilenameLayout = "20060102_150405"
)

var csvHeader = []string{"ID", "Nome", "Data Confirmação", "Status"}

type AdminController struct {
	Logger   *slog.Logger
	Service  domain.ConfirmationService
	Auth     domain.AdminAuthService
	TokenTTL time.Duration
	// Location is used to format confirmation dates; nil means time.Local.
	Location *time.Location
	Now      func() time.Time
}

func NewAdminController(logger *slog.Logger, svc domain.ConfirmationService, auth domain.AdminAuthService, tokenTTL time.Duration) *AdminController {
	return &AdminController{
		Logger:   logger,
		Service:  svc,
		Auth:     auth,
		TokenTTL: tokenTTL,
		Now:      time.Now,
	}
}

// LoginRequest is the body for POST /admin/login.
type LoginRequest struct {
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// ListedConfirmation is a confirmation as shown to the admin, with a formatted date.
type ListedConfirmation struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Data   string `json:"data_confirmacao" example:"10/01/2026 13:05"`
	Status string `json:"status"`
}

// ListResponse is the body of GET /admin/confirmados.
type ListResponse struct {
	Total        int                  `json:"total"`
	Confirmacoes []ListedConfirmation `json:"confirmacoes"`
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a Bearer token accepted by the admin endpoints.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Admin password"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse "Senha incorreta"
// @Failure 422 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Auth.Login(req.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, middleware.MsgWrongPassword)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(c.TokenTTL.Seconds()),
	})
}

// List godoc
// @Summary List confirmations
// @Description Returns every confirmation, newest first, with dates formatted as dd/mm/yyyy hh:mm.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param senha query string false "Admin password (alternative to the Bearer token)"
// @Success 200 {object} controllers.ListResponse
// @Failure 401 {object} helpers.ErrorResponse "Senha incorreta"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/confirmados [get]
func (c *AdminController) List(w http.ResponseWriter, r *http.Request) {
	list, ok := c.list(w, r)
	if !ok {
		return
	}
	items := lo.Map(list, func(conf *domain.Confirmation, _ int) ListedConfirmation {
		return ListedConfirmation{
			ID:     conf.ID,
			Nome:   conf.Name,
			Data:   c.formatDate(conf.ConfirmedAt),
			Status: conf.Status,
		}
	})
	helpers.WriteJSON(w, http.StatusOK, ListResponse{Total: len(items), Confirmacoes: items})
}

// ExportCSV godoc
// @Summary Export confirmations as CSV
// @Description Downloads every confirmation, newest first, as a CSV attachment named confirmacoes_YYYYMMDD_HHMMSS.csv.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param senha query string false "Admin password (alternative to the Bearer token)"
// @Success 200 {file} file
// @Failure 401 {object} helpers.ErrorResponse "Senha incorreta"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/confirmados/csv [get]
func (c *AdminController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	list, ok := c.list(w, r)
	if !ok {
		return
	}
	rows := lo.Map(list, func(conf *domain.Confirmation, _ int) []string {
		return []string{
			strconv.FormatInt(conf.ID, 10),
			conf.Name,
			c.formatDate(conf.ConfirmedAt),
			conf.Status,
		}
	})

	filename := "confirmacoes_" + c.Now().In(c.location()).Format(csvFilenameLayout) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	_ = cw.WriteAll(rows)
	if err := cw.Error(); err != nil {
		c.Logger.ErrorContext(r.Context(), "csv export interrupted", "err", err)
	}
}

func (c *AdminController) list(w http.ResponseWriter, r *http.Request) ([]*domain.Confirmation, bool) {
	list, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Erro ao buscar confirmações.")
		return nil, false
	}
	return list, true
}

func (c *AdminController) formatDate(t time.Time) string {
	return t.In(c.location()).Format(listDateLayout)
}

func (c *AdminController) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}
