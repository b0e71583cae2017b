package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func enabledConfig(name string, threshold uint) Config {
	return Config{
		Name:             name,
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: threshold,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	require.Nil(t, New(Config{Name: "disabled", Enabled: false}))

	b := New(enabledConfig("storage", 3))
	require.NotNil(t, b)
	require.Equal(t, "storage", b.Name())
	require.Equal(t, "closed", b.State())
}

func TestExecute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		breaker   *Breaker
		fn        func() (string, error)
		wantVal   string
		errSubstr string
	}{
		{
			name:    "executes through breaker",
			breaker: New(enabledConfig("success", 5)),
			fn:      func() (string, error) { return "success", nil },
			wantVal: "success",
		},
		{
			name:    "passes through nil breaker",
			fn:      func() (string, error) { return "direct", nil },
			wantVal: "direct",
		},
		{
			name:      "returns error from function",
			breaker:   New(enabledConfig("failure", 5)),
			fn:        func() (string, error) { return "", errors.New("operation failed") },
			errSubstr: "operation failed",
		},
		{
			name:      "nil breaker returns error from function",
			fn:        func() (string, error) { return "", errors.New("direct error") },
			errSubstr: "direct error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := Execute(tc.breaker, tc.fn)

			if tc.errSubstr != "" {
				require.ErrorContains(t, err, tc.errSubstr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.wantVal, result)
		})
	}
}

func TestExecute_MixedResultTypes(t *testing.T) {
	t.Parallel()

	type record struct {
		ID int64
	}

	b := New(enabledConfig("mixed", 3))

	one, err := Execute(b, func() (*record, error) { return &record{ID: 7}, nil })
	require.NoError(t, err)
	require.Equal(t, int64(7), one.ID)

	many, err := Execute(b, func() ([]*record, error) { return []*record{{ID: 1}, {ID: 2}}, nil })
	require.NoError(t, err)
	require.Len(t, many, 2)

	none, err := Execute(b, func() (*record, error) { return nil, nil })
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		transitions []string
	)

	cfg := enabledConfig("open-state", 2)
	cfg.OnStateChange = func(_, from, to string) {
		mu.Lock()
		defer mu.Unlock()

		transitions = append(transitions, from+"->"+to)
	}

	b := New(cfg)

	for range 2 {
		_, err := Execute(b, func() (string, error) { return "", errors.New("failure") })
		require.Error(t, err)
	}

	_, err := Execute(b, func() (string, error) { return "should not execute", nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.Equal(t, "open", b.State())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"closed->open"}, transitions)
}

func TestBreaker_IsSuccessfulErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	cfg := enabledConfig("not-found", 1)
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, errNotFound)
	}

	b := New(cfg)

	for range 5 {
		_, err := Execute(b, func() (string, error) { return "", errNotFound })
		require.ErrorIs(t, err, errNotFound)
	}

	require.Equal(t, "closed", b.State())
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	b := New(enabledConfig("half-open", 1))

	_, _ = Execute(b, func() (string, error) { return "", errors.New("failure") })

	time.Sleep(150 * time.Millisecond)

	result, err := Execute(b, func() (string, error) { return "recovered", nil })
	require.NoError(t, err)
	require.Equal(t, "recovered", result)
	require.Equal(t, "closed", b.State())
}

func TestBreaker_TooManyRequests(t *testing.T) {
	t.Parallel()

	b := New(enabledConfig("too-many", 1))

	_, _ = Execute(b, func() (string, error) { return "", errors.New("failure") })

	time.Sleep(150 * time.Millisecond)

	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_, _ = Execute(b, func() (string, error) {
			close(started)
			time.Sleep(50 * time.Millisecond)

			return "slow", nil
		})
		close(done)
	}()

	<-started

	_, err := Execute(b, func() (string, error) { return "should not run", nil })
	require.ErrorIs(t, err, ErrTooManyRequests)

	<-done
}
