package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/architeacher/devicedomains/internal/domain/model"
	"github.com/architeacher/devicedomains/internal/mocks"
	"github.com/architeacher/devicedomains/internal/usecases/commands"
	"github.com/architeacher/devicedomains/pkg/logger"
	"github.com/architeacher/devicedomains/pkg/metrics/noop"
)

func TestCreateDeviceDomainCommandHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		cmd           commands.CreateDeviceDomainCommand
		setup         func(svc *mocks.FakeDeviceDomainsService)
		expectedInput model.CreateDeviceDomainInput
		expectedErr   error
	}{
		{
			name: "forwards the raw input",
			cmd:  commands.CreateDeviceDomainCommand{Name: "iPhone", Brand: "Apple", State: "AVAILABLE"},
			setup: func(svc *mocks.FakeDeviceDomainsService) {
				svc.CreateDeviceDomainReturns(&model.DeviceDomain{
					ID:               1,
					Name:             "iPhone",
					Brand:            "Apple",
					State:            model.StateAvailable,
					CreationDateTime: time.Now().UTC(),
				}, nil)
			},
			expectedInput: model.CreateDeviceDomainInput{Name: "iPhone", Brand: "Apple", State: "AVAILABLE"},
		},
		{
			name: "validation failure",
			cmd:  commands.CreateDeviceDomainCommand{Brand: "Apple", State: "AVAILABLE"},
			setup: func(svc *mocks.FakeDeviceDomainsService) {
				errs := model.NewValidationErrors()
				errs.Add("name", "name is required", model.ValidationCodeRequired)

				svc.CreateDeviceDomainReturns(nil, errs)
			},
			expectedInput: model.CreateDeviceDomainInput{Brand: "Apple", State: "AVAILABLE"},
			expectedErr:   model.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeDeviceDomainsService{}
			tc.setup(svc)

			handler := commands.NewCreateDeviceDomainCommandHandler(svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

			result, err := handler.Handle(t.Context(), tc.cmd)

			require.Equal(t, 1, svc.CreateDeviceDomainCallCount())
			_, input := svc.CreateDeviceDomainArgsForCall(0)
			require.Equal(t, tc.expectedInput, input)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.Equal(t, model.DeviceDomainID(1), result.ID)
		})
	}
}

func TestUpdateDeviceDomainCommandHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		cmd         commands.UpdateDeviceDomainCommand
		returned    *model.DeviceDomain
		returnedErr error
	}{
		{
			name: "partial update",
			cmd: commands.UpdateDeviceDomainCommand{
				ID:    4,
				Input: model.UpdateDeviceDomainInput{State: model.Some("IN_USE")},
			},
			returned: &model.DeviceDomain{ID: 4, Name: "n", Brand: "b", State: model.StateInUse},
		},
		{
			name: "in-use guard",
			cmd: commands.UpdateDeviceDomainCommand{
				ID:    4,
				Input: model.UpdateDeviceDomainInput{Name: model.Some("renamed")},
			},
			returnedErr: model.ErrCannotUpdateInUseDeviceDomain,
		},
		{
			name:        "missing record",
			cmd:         commands.UpdateDeviceDomainCommand{ID: 99},
			returnedErr: model.ErrDeviceDomainNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeDeviceDomainsService{}
			svc.UpdateDeviceDomainReturns(tc.returned, tc.returnedErr)

			handler := commands.NewUpdateDeviceDomainCommandHandler(svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

			result, err := handler.Handle(t.Context(), tc.cmd)

			require.Equal(t, 1, svc.UpdateDeviceDomainCallCount())
			_, id, input := svc.UpdateDeviceDomainArgsForCall(0)
			require.Equal(t, tc.cmd.ID, id)
			require.Equal(t, tc.cmd.Input, input)

			if tc.returnedErr != nil {
				require.ErrorIs(t, err, tc.returnedErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.returned, result)
		})
	}
}

func TestDeleteDeviceDomainCommandHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		returnedErr     error
		expectedSuccess bool
	}{
		{name: "deleted", expectedSuccess: true},
		{name: "in use", returnedErr: model.ErrCannotDeleteInUseDeviceDomain},
		{name: "missing", returnedErr: model.ErrDeviceDomainNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := new(mocks.FakeDeviceDomainsService)
			svc.DeleteDeviceDomainReturns(tc.returnedErr)

			handler := commands.NewDeleteDeviceDomainCommandHandler(svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

			result, err := handler.Handle(context.Background(), commands.DeleteDeviceDomainCommand{ID: 8})

			require.ErrorIs(t, err, tc.returnedErr)
			require.Equal(t, tc.expectedSuccess, result.Success)

			_, id := svc.DeleteDeviceDomainArgsForCall(0)
			require.Equal(t, model.DeviceDomainID(8), id)
		})
	}
}
