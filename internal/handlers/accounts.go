package handlers

import (
	"context"

	"github.com/Naklen/erc-test/internal/api"
	"github.com/Naklen/erc-test/internal/service"
)

// ListAccounts handles GET /accounts
func (h *Handler) ListAccounts(
	ctx context.Context,
	_ api.ListAccountsRequestObject,
) (api.ListAccountsResponseObject, error) {
	accounts, err := h.accounts.List(ctx)
	if err != nil {
		_, body := h.classify(ctx, "ListAccounts", err)
		return api.ListAccounts500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.ListAccounts200JSONResponse(toAPIAccounts(accounts, false)), nil
}

// GetAccount handles GET /accounts/{id}
func (h *Handler) GetAccount(
	ctx context.Context,
	request api.GetAccountRequestObject,
) (api.GetAccountResponseObject, error) {
	account, err := h.accounts.Get(ctx, request.Id)
	if err != nil {
		kind, body := h.classify(ctx, "GetAccount", err)
		if kind == kindNotFound {
			return api.GetAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.GetAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetAccount200JSONResponse(toAPIAccount(*account, true)), nil
}

// CreateAccount handles POST /accounts
func (h *Handler) CreateAccount(
	ctx context.Context,
	request api.CreateAccountRequestObject,
) (api.CreateAccountResponseObject, error) {
	account, err := h.accounts.Create(ctx, toAccountInput(request.Body))
	if err != nil {
		kind, body := h.classify(ctx, "CreateAccount", err)
		if kind == kindValidation {
			return api.CreateAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		return api.CreateAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.CreateAccount201JSONResponse{
		Body:    toAPIAccount(*account, true),
		Headers: api.CreateAccount201ResponseHeaders{Location: accountLocation(account.ID)},
	}, nil
}

// UpdateAccount handles PUT /accounts/{id}
func (h *Handler) UpdateAccount(
	ctx context.Context,
	request api.UpdateAccountRequestObject,
) (api.UpdateAccountResponseObject, error) {
	if err := h.accounts.Update(ctx, request.Id, toAccountInput(request.Body)); err != nil {
		kind, body := h.classify(ctx, "UpdateAccount", err)
		switch kind {
		case kindValidation:
			return api.UpdateAccount400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case kindNotFound:
			return api.UpdateAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.UpdateAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.UpdateAccount204Response{}, nil
}

// DeleteAccount handles DELETE /accounts/{id}
func (h *Handler) DeleteAccount(
	ctx context.Context,
	request api.DeleteAccountRequestObject,
) (api.DeleteAccountResponseObject, error) {
	if err := h.accounts.Delete(ctx, request.Id); err != nil {
		kind, body := h.classify(ctx, "DeleteAccount", err)
		if kind == kindNotFound {
			return api.DeleteAccount404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.DeleteAccount500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.DeleteAccount204Response{}, nil
}

// SearchAccounts handles GET /accounts/search
func (h *Handler) SearchAccounts(
	ctx context.Context,
	request api.SearchAccountsRequestObject,
) (api.SearchAccountsResponseObject, error) {
	p := request.Params
	accounts, err := h.accounts.Search(ctx, service.AccountSearchParams{
		WithResidents: p.WithResidents,
		OpenDate:      p.OpenDate,
		Number:        p.Number,
		Address:       p.Address,
		Firstname:     p.Firstname,
		Lastname:      p.Lastname,
		Surname:       p.Surname,
	})
	if err != nil {
		_, body := h.classify(ctx, "SearchAccounts", err)
		return api.SearchAccounts500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.SearchAccounts200JSONResponse(toAPIAccounts(accounts, true)), nil
}

// AddResidents handles POST /accounts/add-residents
func (h *Handler) AddResidents(
	ctx context.Context,
	request api.AddResidentsRequestObject,
) (api.AddResidentsResponseObject, error) {
	var residentIDs []int64
	if request.Params.ResidentsIds != nil {
		residentIDs = *request.Params.ResidentsIds
	}

	if err := h.accounts.AttachResidents(ctx, request.Params.AccountID, residentIDs); err != nil {
		kind, body := h.classify(ctx, "AddResidents", err)
		if kind == kindNotFound {
			return api.AddResidents404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.AddResidents500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.AddResidents204Response{}, nil
}
