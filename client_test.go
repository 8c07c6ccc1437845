package helius

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a fake service backed by handler and returns a Client
// pointing both its REST and JSON-RPC endpoints at it. Retries are disabled
// so failure tests stay fast.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	mockServer := httptest.NewServer(handler)
	t.Cleanup(mockServer.Close)

	baseOpts := []Option{
		WithRESTEndpoint(mockServer.URL),
		WithRPCEndpoint(mockServer.URL),
		WithRetryMax(0),
	}

	client, err := New("test-api-key", append(baseOpts, opts...)...)
	require.NoError(t, err)

	return client
}

// rpcEnvelope mirrors the JSON-RPC request wire shape for test assertions.
type rpcEnvelope struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

func TestNew(t *testing.T) {
	t.Run("fails when the api key is empty", func(t *testing.T) {
		client, err := New("")
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrAPIKeyRequired)
	})

	t.Run("fails on an unknown cluster", func(t *testing.T) {
		client, err := New("test-api-key", WithCluster("testnet"))
		assert.Nil(t, client)
		assert.ErrorIs(t, err, ErrUnsupportedCluster)
	})

	t.Run("defaults to the mainnet cluster", func(t *testing.T) {
		client, err := New("test-api-key")
		require.NoError(t, err)

		assert.Equal(t, ClusterMainnetBeta, client.cluster)
		assert.NotNil(t, client.rest)
		assert.NotNil(t, client.rpc)
		assert.Zero(t, client.maxMintlistPages, "the mintlist page ceiling should be disabled by default")
	})

	t.Run("applies all custom options correctly", func(t *testing.T) {
		client, err := New("test-api-key",
			WithCluster(ClusterDevnet),
			WithMaxMintlistPages(3),
		)
		require.NoError(t, err)

		assert.Equal(t, ClusterDevnet, client.cluster)
		assert.Equal(t, 3, client.maxMintlistPages)
	})

	t.Run("sends the api key as a query parameter on both transports", func(t *testing.T) {
		var restKey, rpcKey string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v0/webhooks":
				restKey = r.URL.Query().Get("api-key")
				w.Write([]byte("[]"))
			default:
				rpcKey = r.URL.Query().Get("api-key")
				json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": "1", "result": "ok"})
			}
		}))

		_, err := client.GetAllWebhooks(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "test-api-key", restKey)

		_, err = client.RawRequest(t.Context(), "getHealth", nil)
		require.NoError(t, err)
		assert.Equal(t, "test-api-key", rpcKey)
	})
}
