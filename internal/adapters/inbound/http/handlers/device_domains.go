package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/usecases"
	"github.com/architeacher/devicedomains/internal/usecases/commands"
	"github.com/architeacher/devicedomains/internal/usecases/queries"
	"github.com/architeacher/devicedomains/pkg/logger"
)

const idParam = "id"

type (
	deviceDomainResponse struct {
		ID               int64     `json:"id"`
		Name             string    `json:"name"`
		Brand            string    `json:"brand"`
		State            string    `json:"state"`
		CreationDateTime time.Time `json:"creationDateTime"`
	}

	DeviceDomainHandler struct {
		app    *usecases.Application
		logger logger.Logger
	}
)

func NewDeviceDomainHandler(app *usecases.Application, log logger.Logger) *DeviceDomainHandler {
	return &DeviceDomainHandler{
		app:    app,
		logger: log,
	}
}

func (h *DeviceDomainHandler) GetDeviceDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	deviceDomain, err := h.app.Queries.GetDeviceDomain.Execute(r.Context(), queries.GetDeviceDomainQuery{ID: id})
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainResponse(deviceDomain))
}

func (h *DeviceDomainHandler) ListDeviceDomains(w http.ResponseWriter, r *http.Request) {
	deviceDomains, err := h.app.Queries.ListDeviceDomains.Execute(r.Context(), queries.ListDeviceDomainsQuery{})
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainListResponse(deviceDomains))
}

func (h *DeviceDomainHandler) ListDeviceDomainsByBrand(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if !params.Has(fieldBrand) {
		errs := model.NewValidationErrors()
		errs.Add(fieldBrand, "brand query parameter is required", model.ValidationCodeRequired)
		writeValidationError(w, errs)

		return
	}

	deviceDomains, err := h.app.Queries.ListDeviceDomainsByBrand.Execute(
		r.Context(),
		queries.ListDeviceDomainsByBrandQuery{Brand: params.Get(fieldBrand)},
	)
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainListResponse(deviceDomains))
}

func (h *DeviceDomainHandler) ListDeviceDomainsByState(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(fieldState)

	state, err := model.ParseState(raw)
	if err != nil {
		errs := model.NewValidationErrors()
		if raw == "" {
			errs.Add(fieldState, "state query parameter is required", model.ValidationCodeRequired)
		} else {
			errs.Add(fieldState, "state must be one of AVAILABLE, IN_USE, INACTIVE", model.ValidationCodeInvalidEnum)
		}

		writeValidationError(w, errs)

		return
	}

	deviceDomains, err := h.app.Queries.ListDeviceDomainsByState.Execute(
		r.Context(),
		queries.ListDeviceDomainsByStateQuery{State: state},
	)
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainListResponse(deviceDomains))
}

func (h *DeviceDomainHandler) CreateDeviceDomain(w http.ResponseWriter, r *http.Request) {
	input, err := decodeCreateInput(r)
	if err != nil {
		h.writeDecodeError(w, r, err)

		return
	}

	deviceDomain, err := h.app.Commands.CreateDeviceDomain.Handle(r.Context(), commands.CreateDeviceDomainCommand{
		Name:  input.Name,
		Brand: input.Brand,
		State: input.State,
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainResponse(deviceDomain))
}

func (h *DeviceDomainHandler) UpdateDeviceDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	input, err := decodeUpdateInput(r)
	if err != nil {
		h.writeDecodeError(w, r, err)

		return
	}

	deviceDomain, err := h.app.Commands.UpdateDeviceDomain.Handle(r.Context(), commands.UpdateDeviceDomainCommand{
		ID:    id,
		Input: input,
	})
	if err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeJSONResponse(w, http.StatusOK, toDeviceDomainResponse(deviceDomain))
}

func (h *DeviceDomainHandler) DeleteDeviceDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if _, err := h.app.Commands.DeleteDeviceDomain.Handle(r.Context(), commands.DeleteDeviceDomainCommand{ID: id}); err != nil {
		writeDomainError(w, r, h.logger, err)

		return
	}

	writeTextResponse(w, http.StatusOK, msgDeviceDomainDeleted)
}

func (h *DeviceDomainHandler) parseID(w http.ResponseWriter, r *http.Request) (model.DeviceDomainID, bool) {
	id, err := model.ParseDeviceDomainID(chi.URLParam(r, idParam))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceDomainID)

		return 0, false
	}

	return id, true
}

func (h *DeviceDomainHandler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeErrorResponse(w, http.StatusRequestEntityTooLarge, codePayloadTooLarge, msgPayloadTooLarge)
	case errors.Is(err, errMalformedBody):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)
	default:
		writeDomainError(w, r, h.logger, err)
	}
}

func toDeviceDomainResponse(d *model.DeviceDomain) deviceDomainResponse {
	return deviceDomainResponse{
		ID:               int64(d.ID),
		Name:             d.Name,
		Brand:            d.Brand,
		State:            d.State.String(),
		CreationDateTime: d.CreationDateTime.UTC(),
	}
}

// toDeviceDomainListResponse never returns nil so an empty result encodes as [].
func toDeviceDomainListResponse(deviceDomains []*model.DeviceDomain) []deviceDomainResponse {
	response := make([]deviceDomainResponse, 0, len(deviceDomains))
	for _, d := range deviceDomains {
		response = append(response, toDeviceDomainResponse(d))
	}

	return response
}
