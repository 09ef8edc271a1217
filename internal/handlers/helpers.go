package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Naklen/erc-test/internal/api"
	"github.com/Naklen/erc-test/internal/models"
	"github.com/Naklen/erc-test/internal/service"
)

// errorKind selects the HTTP status family for a failed operation.
type errorKind int

const (
	kindInternal errorKind = iota
	kindValidation
	kindNotFound
)

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// classify maps a service error to a response kind and body. Internal
// failures are logged here and never leak their cause to the client.
func (h *Handler) classify(ctx context.Context, op string, err error) (errorKind, api.Error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.ErrorContext(ctx, "request failed", "operation", op, "error", err)
		return kindInternal, internalErrorBody()
	}

	switch svcErr.Code {
	case service.ErrCodeValidationFailed:
		messages := append([]string(nil), svcErr.Details...)
		return kindValidation, api.Error{
			Error:    api.ErrorCodeValidationFailed,
			Message:  svcErr.Message,
			Messages: &messages,
		}
	case service.ErrCodeAccountNotFound, service.ErrCodeResidentNotFound:
		return kindNotFound, api.Error{
			Error:   api.ErrorCodeNotFound,
			Message: svcErr.Message,
		}
	default:
		h.logger.ErrorContext(ctx, "unmapped service error", "operation", op, "code", svcErr.Code, "error", err)
		return kindInternal, internalErrorBody()
	}
}

func internalErrorBody() api.Error {
	return api.Error{
		Error:   api.ErrorCodeInternalError,
		Message: "internal error",
	}
}

// requestErrorHandler answers malformed parameters and bodies with the
// bad_request error document.
func requestErrorHandler(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.DebugContext(r.Context(), "rejected malformed request", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, api.Error{
			Error:   api.ErrorCodeBadRequest,
			Message: err.Error(),
		})
	}
}

func responseErrorHandler(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.ErrorContext(r.Context(), "failed to write response", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, internalErrorBody())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(body)
}

func accountLocation(id int64) string {
	return fmt.Sprintf("/accounts/%d", id)
}

func residentLocation(id int64) string {
	return fmt.Sprintf("/residents/%d", id)
}

func toAPIAccount(a models.Account, withResidents bool) api.Account {
	out := api.Account{
		Id:            a.ID,
		AccountNumber: a.AccountNumber,
		OpenDate:      a.OpenDate,
		Address:       a.Address,
		SpaceArea:     a.SpaceArea,
	}
	if a.HasCloseDate() {
		out.CloseDate = a.CloseDate
	}
	if withResidents {
		residents := toAPIResidents(a.Residents)
		out.Residents = &residents
	}
	return out
}

func toAPIAccounts(accounts []models.Account, withResidents bool) []api.Account {
	out := make([]api.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAPIAccount(a, withResidents))
	}
	return out
}

func toAPIResident(r models.Resident) api.Resident {
	return api.Resident{
		Id:         r.ID,
		DocumentId: r.DocumentID,
		Firstname:  r.Firstname,
		Lastname:   r.Lastname,
		Surname:    r.Surname,
		BirthDate:  r.BirthDate,
	}
}

func toAPIResidents(residents []models.Resident) []api.Resident {
	out := make([]api.Resident, 0, len(residents))
	for _, r := range residents {
		out = append(out, toAPIResident(r))
	}
	return out
}

func toAccountInput(body *api.AccountInput) models.AccountInput {
	if body == nil {
		return models.AccountInput{}
	}
	return models.AccountInput{
		AccountNumber: body.AccountNumber,
		OpenDate:      flexibleTime(body.OpenDate),
		CloseDate:     flexibleTime(body.CloseDate),
		Address:       body.Address,
		SpaceArea:     body.SpaceArea,
	}
}

func toResidentInput(body *api.ResidentInput) models.ResidentInput {
	if body == nil {
		return models.ResidentInput{}
	}
	return models.ResidentInput{
		DocumentID: body.DocumentId,
		Firstname:  body.Firstname,
		Lastname:   body.Lastname,
		Surname:    body.Surname,
		BirthDate:  flexibleTime(body.BirthDate),
	}
}

func flexibleTime(ft *api.FlexibleTime) *time.Time {
	if ft == nil {
		return nil
	}
	t := ft.Time()
	return &t
}
