package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

const (
	fieldName  = "name"
	fieldBrand = "brand"
	fieldState = "state"
)

var (
	errMalformedBody = errors.New("malformed request body")
	errBodyTooLarge  = errors.New("request body too large")
)

// decodeFields reads a JSON object keeping each member raw, so a member that
// is absent can be told apart from one sent as null. Unknown members,
// including id and creationDateTime, are ignored by the callers.
func decodeFields(r *http.Request) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errBodyTooLarge
		}

		return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, errMalformedBody
	}

	return fields, nil
}

// optionalString reports a member as absent, present, or invalid. JSON null
// and non-string values are recorded on errs.
func optionalString(fields map[string]json.RawMessage, field string, errs *model.ValidationErrors) model.Optional[string] {
	raw, ok := fields[field]
	if !ok {
		return model.None[string]()
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		errs.Add(field, field+" must not be null", model.ValidationCodeNotNull)

		return model.None[string]()
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		errs.Add(field, field+" must be a string", model.ValidationCodeInvalidType)

		return model.None[string]()
	}

	return model.Some(value)
}

// decodeCreateInput treats null like an absent member; the service then
// reports it as required.
func decodeCreateInput(r *http.Request) (model.CreateDeviceDomainInput, error) {
	fields, err := decodeFields(r)
	if err != nil {
		return model.CreateDeviceDomainInput{}, err
	}

	errs := model.NewValidationErrors()
	str := func(field string) string {
		if raw, ok := fields[field]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return ""
		}

		value, _ := optionalString(fields, field, errs).Get()

		return value
	}

	input := model.CreateDeviceDomainInput{
		Name:  str(fieldName),
		Brand: str(fieldBrand),
		State: str(fieldState),
	}

	return input, errs.OrNil()
}

func decodeUpdateInput(r *http.Request) (model.UpdateDeviceDomainInput, error) {
	fields, err := decodeFields(r)
	if err != nil {
		return model.UpdateDeviceDomainInput{}, err
	}

	errs := model.NewValidationErrors()

	input := model.UpdateDeviceDomainInput{
		Name:  optionalString(fields, fieldName, errs),
		Brand: optionalString(fields, fieldBrand, errs),
		State: optionalString(fields, fieldState, errs),
	}

	return input, errs.OrNil()
}
