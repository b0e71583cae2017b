package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

func TestNewDeviceDomain(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Add(-time.Millisecond)
	d := model.NewDeviceDomain("Test Device", "Test Brand", model.StateAvailable)
	after := time.Now().UTC().Add(time.Millisecond)

	require.True(t, d.ID.IsZero())
	require.Equal(t, "Test Device", d.Name)
	require.Equal(t, "Test Brand", d.Brand)
	require.Equal(t, model.StateAvailable, d.State)
	require.Equal(t, time.UTC, d.CreationDateTime.Location())
	require.WithinRange(t, d.CreationDateTime, before, after)
	require.Zero(t, d.CreationDateTime.Nanosecond()%int(time.Microsecond))
}

func TestParseDeviceDomainID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected model.DeviceDomainID
		wantErr  bool
	}{
		{name: "positive integer", input: "100", expected: 100},
		{name: "max int64", input: "9223372036854775807", expected: 9223372036854775807},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "overflow", input: "9223372036854775808", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := model.ParseDeviceDomainID(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, model.ErrInvalidDeviceDomainID)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, id)
			require.Equal(t, tc.input, id.String())
		})
	}
}

func TestDeviceDomain_Guards(t *testing.T) {
	t.Parallel()

	for _, state := range model.AllStates() {
		d := &model.DeviceDomain{State: state}

		expected := state != model.StateInUse
		require.Equal(t, expected, d.CanUpdateNameAndBrand(), state)
		require.Equal(t, expected, d.CanDelete(), state)
	}
}

func TestDeviceDomain_Apply(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name        string
		state       model.State
		input       model.UpdateDeviceDomainInput
		expected    model.DeviceDomain
		expectedErr error
	}{
		{
			name:  "applies every field of an available record",
			state: model.StateAvailable,
			input: model.UpdateDeviceDomainInput{
				Name:  model.Some("New Name"),
				Brand: model.Some("New Brand"),
				State: model.Some("INACTIVE"),
			},
			expected: model.DeviceDomain{Name: "New Name", Brand: "New Brand", State: model.StateInactive},
		},
		{
			name:     "absent fields stay unchanged",
			state:    model.StateInactive,
			input:    model.UpdateDeviceDomainInput{Brand: model.Some("Other")},
			expected: model.DeviceDomain{Name: "Old Name", Brand: "Other", State: model.StateInactive},
		},
		{
			name:     "empty input is a no-op",
			state:    model.StateInUse,
			input:    model.UpdateDeviceDomainInput{},
			expected: model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateInUse},
		},
		{
			name:     "in use record may change state",
			state:    model.StateInUse,
			input:    model.UpdateDeviceDomainInput{State: model.Some("AVAILABLE")},
			expected: model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateAvailable},
		},
		{
			name:        "in use record rejects name",
			state:       model.StateInUse,
			input:       model.UpdateDeviceDomainInput{Name: model.Some("X")},
			expected:    model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateInUse},
			expectedErr: model.ErrCannotUpdateInUseDeviceDomain,
		},
		{
			name:        "in use record rejects brand even with state change",
			state:       model.StateInUse,
			input:       model.UpdateDeviceDomainInput{Brand: model.Some("X"), State: model.Some("AVAILABLE")},
			expected:    model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateInUse},
			expectedErr: model.ErrCannotUpdateInUseDeviceDomain,
		},
		{
			name:        "in use record rejects an unchanged name",
			state:       model.StateInUse,
			input:       model.UpdateDeviceDomainInput{Name: model.Some("Old Name")},
			expected:    model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateInUse},
			expectedErr: model.ErrCannotUpdateInUseDeviceDomain,
		},
		{
			name:        "rejects unknown state",
			state:       model.StateAvailable,
			input:       model.UpdateDeviceDomainInput{Name: model.Some("New"), State: model.Some("BROKEN")},
			expected:    model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateAvailable},
			expectedErr: model.ErrValidation,
		},
		{
			name:        "rejects blank name",
			state:       model.StateAvailable,
			input:       model.UpdateDeviceDomainInput{Name: model.Some("  ")},
			expected:    model.DeviceDomain{Name: "Old Name", Brand: "Old Brand", State: model.StateAvailable},
			expectedErr: model.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := &model.DeviceDomain{
				ID:               7,
				Name:             "Old Name",
				Brand:            "Old Brand",
				State:            tc.state,
				CreationDateTime: created,
			}

			err := d.Apply(tc.input)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, model.DeviceDomainID(7), d.ID)
			require.Equal(t, created, d.CreationDateTime)
			require.Equal(t, tc.expected.Name, d.Name)
			require.Equal(t, tc.expected.Brand, d.Brand)
			require.Equal(t, tc.expected.State, d.State)
		})
	}
}

func TestInvalidStateErrors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, model.ErrCannotUpdateInUseDeviceDomain, model.ErrInvalidState)
	require.ErrorIs(t, model.ErrCannotDeleteInUseDeviceDomain, model.ErrInvalidState)
	require.NotErrorIs(t, model.ErrDeviceDomainNotFound, model.ErrInvalidState)
}

func TestClone(t *testing.T) {
	t.Parallel()

	d := &model.DeviceDomain{ID: 1, Name: "a"}
	c := d.Clone()
	c.Name = "b"

	require.Equal(t, "a", d.Name)
}
