package handlers

import (
	"context"

	"github.com/Naklen/erc-test/internal/api"
)

// ListResidents handles GET /residents
func (h *Handler) ListResidents(
	ctx context.Context,
	_ api.ListResidentsRequestObject,
) (api.ListResidentsResponseObject, error) {
	residents, err := h.residents.List(ctx)
	if err != nil {
		_, body := h.classify(ctx, "ListResidents", err)
		return api.ListResidents500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.ListResidents200JSONResponse(toAPIResidents(residents)), nil
}

// GetResident handles GET /residents/{id}
func (h *Handler) GetResident(
	ctx context.Context,
	request api.GetResidentRequestObject,
) (api.GetResidentResponseObject, error) {
	resident, err := h.residents.Get(ctx, request.Id)
	if err != nil {
		kind, body := h.classify(ctx, "GetResident", err)
		if kind == kindNotFound {
			return api.GetResident404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.GetResident500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetResident200JSONResponse(toAPIResident(*resident)), nil
}

// CreateResident handles POST /residents
func (h *Handler) CreateResident(
	ctx context.Context,
	request api.CreateResidentRequestObject,
) (api.CreateResidentResponseObject, error) {
	resident, err := h.residents.Create(ctx, toResidentInput(request.Body))
	if err != nil {
		kind, body := h.classify(ctx, "CreateResident", err)
		if kind == kindValidation {
			return api.CreateResident400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		return api.CreateResident500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.CreateResident201JSONResponse{
		Body:    toAPIResident(*resident),
		Headers: api.CreateResident201ResponseHeaders{Location: residentLocation(resident.ID)},
	}, nil
}

// UpdateResident handles PUT /residents/{id}
func (h *Handler) UpdateResident(
	ctx context.Context,
	request api.UpdateResidentRequestObject,
) (api.UpdateResidentResponseObject, error) {
	if err := h.residents.Update(ctx, request.Id, toResidentInput(request.Body)); err != nil {
		kind, body := h.classify(ctx, "UpdateResident", err)
		switch kind {
		case kindValidation:
			return api.UpdateResident400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case kindNotFound:
			return api.UpdateResident404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.UpdateResident500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.UpdateResident204Response{}, nil
}

// DeleteResident handles DELETE /residents/{id}
func (h *Handler) DeleteResident(
	ctx context.Context,
	request api.DeleteResidentRequestObject,
) (api.DeleteResidentResponseObject, error) {
	if err := h.residents.Delete(ctx, request.Id); err != nil {
		kind, body := h.classify(ctx, "DeleteResident", err)
		if kind == kindNotFound {
			return api.DeleteResident404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.DeleteResident500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.DeleteResident204Response{}, nil
}
