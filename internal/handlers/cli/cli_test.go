package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCLIClient builds a client pointed at a mock service, with transport
// retries disabled so failure tests stay fast.
func newCLIClient(t *testing.T, handler http.Handler) *helius.Client {
	t.Helper()

	mockServer := httptest.NewServer(handler)
	t.Cleanup(mockServer.Close)

	svc, err := helius.New("test-api-key",
		helius.WithRESTEndpoint(mockServer.URL),
		helius.WithRPCEndpoint(mockServer.URL),
		helius.WithRetryMax(0),
	)
	require.NoError(t, err)

	return svc
}

// newTestRetrier builds a single-attempt retrier so command failures surface
// immediately.
func newTestRetrier() retry.Retry {
	return retry.New(retry.WithAttempts(1))
}

// rpcRequest mirrors the fields of a JSON-RPC request the tests care about.
type rpcRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

func TestRun(t *testing.T) {
	t.Run("registers every command group", func(t *testing.T) {
		svc := newCLIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		originalArgs := os.Args
		os.Args = []string{"helius", "--help"}
		t.Cleanup(func() { os.Args = originalArgs })

		err := Run(t.Context(), svc, newTestRetrier())
		assert.NoError(t, err)
	})

	t.Run("dispatches to a registered command", func(t *testing.T) {
		var requests int
		svc := newCLIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			_, _ = w.Write([]byte(`[]`))
		}))

		originalArgs := os.Args
		os.Args = []string{"helius", "webhooks", "list"}
		t.Cleanup(func() { os.Args = originalArgs })

		err := Run(t.Context(), svc, newTestRetrier())
		assert.NoError(t, err)
		assert.Equal(t, 1, requests)
	})
}
