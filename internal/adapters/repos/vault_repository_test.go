package repos_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/devicedomains/internal/adapters/repos"
)

func TestVaultRepository(t *testing.T) {
	t.Parallel()

	var writtenBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))

		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/apps/data/svc-device-domains":
			_, _ = io.WriteString(w, `{"data":{"data":{"POSTGRES_PASSWORD":"s3cret"},"metadata":{"version":4}}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/v1/auth/approle/login":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&writtenBody))
			_, _ = io.WriteString(w, `{"auth":{"client_token":"issued"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errors":[]}`)
		}
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(&api.Config{Address: server.URL})
	require.NoError(t, err)

	repo := repos.NewVaultRepository(client)
	repo.SetToken("test-token")

	ctx := context.Background()

	secret, err := repo.GetSecrets(ctx, "apps/data/svc-device-domains")
	require.NoError(t, err)
	require.NotNil(t, secret)

	data, ok := secret.Data["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "s3cret", data["POSTGRES_PASSWORD"])

	login, err := repo.WriteWithContext(ctx, "auth/approle/login", map[string]any{"role_id": "r", "secret_id": "s"})
	require.NoError(t, err)
	require.Equal(t, "issued", login.Auth.ClientToken)
	require.Equal(t, "r", writtenBody["role_id"])

	missing, err := repo.GetSecrets(ctx, "apps/data/unknown")
	require.NoError(t, err)
	require.Nil(t, missing)
}
