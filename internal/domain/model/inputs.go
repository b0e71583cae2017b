package model

import (
	"fmt"
	"strings"
)

type (
	// CreateDeviceDomainInput carries raw client values; empty means absent.
	CreateDeviceDomainInput struct {
		Name  string
		Brand string
		State string
	}

	// UpdateDeviceDomainInput holds only the fields the client sent. A field
	// that is not set is left unchanged.
	UpdateDeviceDomainInput struct {
		Name  Optional[string]
		Brand Optional[string]
		State Optional[string]
	}
)

// Validate reports every missing or malformed field and returns the parsed
// state.
func (in CreateDeviceDomainInput) Validate() (State, error) {
	errs := NewValidationErrors()

	requireText(errs, "name", in.Name)
	requireText(errs, "brand", in.Brand)

	var state State

	if strings.TrimSpace(in.State) == "" {
		errs.Add("state", "state is required", ValidationCodeRequired)
	} else {
		parsed, err := ParseState(in.State)
		if err != nil {
			errs.Add("state", invalidStateMessage(in.State), ValidationCodeInvalidEnum)
		}

		state = parsed
	}

	return state, errs.OrNil()
}

func (in UpdateDeviceDomainInput) Validate() (Optional[State], error) {
	errs := NewValidationErrors()

	if name, ok := in.Name.Get(); ok {
		requireText(errs, "name", name)
	}

	if brand, ok := in.Brand.Get(); ok {
		requireText(errs, "brand", brand)
	}

	state := None[State]()

	if raw, ok := in.State.Get(); ok {
		parsed, err := ParseState(raw)
		if err != nil {
			errs.Add("state", invalidStateMessage(raw), ValidationCodeInvalidEnum)
		} else {
			state = Some(parsed)
		}
	}

	return state, errs.OrNil()
}

// ChangesNameOrBrand is true when either guarded field is present, whatever
// its value.
func (in UpdateDeviceDomainInput) ChangesNameOrBrand() bool {
	return in.Name.IsSet() || in.Brand.IsSet()
}

func (in UpdateDeviceDomainInput) IsEmpty() bool {
	return !in.Name.IsSet() && !in.Brand.IsSet() && !in.State.IsSet()
}

func requireText(errs *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required", ValidationCodeRequired)
	}
}

func invalidStateMessage(raw string) string {
	names := make([]string, 0, len(AllStates()))
	for _, s := range AllStates() {
		names = append(names, s.String())
	}

	return fmt.Sprintf("state must be one of %s, got %q", strings.Join(names, ", "), raw)
}
