package cli

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestBundlesCommand(t *testing.T) {
	t.Run("command metadata", func(t *testing.T) {
		cmd := bundlesCommand(nil)

		assert.Equal(t, "bundles", cmd.Name)
		require.Len(t, cmd.Commands, 1)
		assert.Equal(t, "send", cmd.Commands[0].Name)
	})
}

func TestSendBundleCommand(t *testing.T) {
	t.Run("submits the transactions in order", func(t *testing.T) {
		var captured rpcRequest
		svc := newCLIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&captured)
			_, _ = w.Write([]byte(`{"jsonrpc": "2.0", "id": "1", "result": "bundle-1"}`))
		}))

		app := &cli.Command{Commands: []*cli.Command{sendBundleCommand(svc)}}
		err := app.Run(t.Context(), []string{"test", "send", "--transaction", "tx-1", "--transaction", "tx-2"})

		assert.NoError(t, err)
		assert.Equal(t, "sendBundle", captured.Method)
		assert.JSONEq(t, `[["tx-1", "tx-2"]]`, string(captured.Params))
	})

	t.Run("fails when no transaction is given", func(t *testing.T) {
		var requests int
		svc := newCLIClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))

		app := &cli.Command{Commands: []*cli.Command{sendBundleCommand(svc)}}
		err := app.Run(t.Context(), []string{"test", "send"})

		assert.Error(t, err)
		assert.Zero(t, requests)
	})
}
