package helius

import "context"

// SendBundle submits an atomic bundle of fully signed, base58-encoded
// transactions for block inclusion. The transactions land together in order
// or not at all.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - transactions: serialized signed transactions, in execution order.
//
// Returns:
//   - string: the bundle id assigned by the service.
//   - error: a RemoteCallError when the call fails or the service reports
//     an error.
func (c *Client) SendBundle(ctx context.Context, transactions []string) (string, error) {
	return rpcCall[string](ctx, c, "sendBundle", []any{transactions})
}
