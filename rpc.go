package helius

import (
	"context"
	"encoding/json"
)

// rpcCall dispatches a JSON-RPC method and decodes its result into T.
// Failures are wrapped in a RemoteCallError carrying the method name.
func rpcCall[T any](ctx context.Context, c *Client, method string, params any) (T, error) {
	var out T

	raw, err := c.rpc.Fetch(ctx, method, params)
	if err != nil {
		return out, remoteCallError(method, err)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, remoteCallError(method, err)
	}

	return out, nil
}

// RawRequest dispatches an arbitrary JSON-RPC method against the cluster's
// RPC endpoint and returns the undecoded result. The params value is
// forwarded as-is: pass a struct or map for object parameters, or a slice
// for positional ones; nil omits the params field entirely.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - method: JSON-RPC method name.
//   - params: method parameters, or nil for none.
//
// Returns:
//   - json.RawMessage: the raw result field of the response.
//   - error: a RemoteCallError carrying the method name when the call fails
//     or the service reports an error.
func (c *Client) RawRequest(ctx context.Context, method string, params any) (json.RawMessage, error) {
	raw, err := c.rpc.Fetch(ctx, method, params)
	if err != nil {
		return nil, remoteCallError(method, err)
	}

	return raw, nil
}
