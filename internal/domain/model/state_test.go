package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/domain/model"
)

func TestParseState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected model.State
		wantErr  bool
	}{
		{name: "available", input: "AVAILABLE", expected: model.StateAvailable},
		{name: "in use", input: "IN_USE", expected: model.StateInUse},
		{name: "inactive with surrounding spaces", input: " INACTIVE ", expected: model.StateInactive},
		{name: "lower case is rejected", input: "available", wantErr: true},
		{name: "hyphenated is rejected", input: "IN-USE", wantErr: true},
		{name: "empty is rejected", input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			state, err := model.ParseState(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, model.ErrUnknownState)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, state)
			require.True(t, state.IsValid())
		})
	}
}

func TestAllStates(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]model.State{model.StateAvailable, model.StateInUse, model.StateInactive},
		model.AllStates(),
	)
}
