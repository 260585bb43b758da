package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rsvp/internal/delivery/http/helpers"
	"rsvp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConfirmationService implements domain.ConfirmationService for handler tests.
type fakeConfirmationService struct {
	confirmErr  error
	confirmed   []string
	list        []*domain.Confirmation
	listErr     error
	confirmedAt time.Time
}

func (f *fakeConfirmationService) Confirm(ctx context.Context, name string) (*domain.Confirmation, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	f.confirmed = append(f.confirmed, name)
	c := domain.NewConfirmation(name, f.confirmedAt)
	c.ID = int64(len(f.confirmed))
	return c, nil
}

func (f *fakeConfirmationService) List(ctx context.Context) ([]*domain.Confirmation, error) {
	return f.list, f.listErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestConfirmationController_Confirm(t *testing.T) {
	confirmedAt := time.Date(2026, 1, 10, 13, 5, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		serviceErr   error
		wantStatus   int
		wantCode     string
		wantDetail   string
		wantServiced string
	}{
		{
			name:         "success trims name",
			body:         `{"nome":"  Maria Silva "}`,
			wantStatus:   http.StatusOK,
			wantServiced: "Maria Silva",
		},
		{
			name:       "malformed json",
			body:       `{"nome":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "name too short",
			body:       `{"nome":"Jo"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeValidation,
		},
		{
			name:       "name too long",
			body:       `{"nome":"` + strings.Repeat("a", 101) + `"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeValidation,
		},
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeValidation,
		},
		{
			name:       "duplicate",
			body:       `{"nome":"Maria Silva"}`,
			serviceErr: domain.ErrAlreadyConfirmed,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeConflict,
			wantDetail: MsgAlreadyConfirmed,
		},
		{
			name:       "service rejects input",
			body:       `{"nome":"Maria Silva"}`,
			serviceErr: domain.ErrInvalidInput,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeValidation,
			wantDetail: "O nome deve ter entre 3 e 100 caracteres.",
		},
		{
			name:       "internal error is not leaked",
			body:       `{"nome":"Maria Silva"}`,
			serviceErr: errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
			wantDetail: MsgConfirmFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeConfirmationService{confirmErr: tt.serviceErr, confirmedAt: confirmedAt}
			ctrl := NewConfirmationController(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/confirmar-presenca", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Confirm(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusOK {
				var got domain.Confirmation
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, tt.wantServiced, got.Name)
				assert.Equal(t, domain.StatusConfirmed, got.Status)
				assert.True(t, confirmedAt.Equal(got.ConfirmedAt))
				assert.Equal(t, []string{tt.wantServiced}, svc.confirmed)
				return
			}
			var resp helpers.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Detail)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, resp.Detail)
			}
		})
	}
}
