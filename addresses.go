package helius

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/helius-go/internal/pkg/logger"
	"github.com/gabapcia/helius-go/internal/pkg/types"
)

// MaxWebhookAddresses is the hard ceiling on how many account addresses a
// single webhook may watch.
const MaxWebhookAddresses = 100_000

// ErrAddressCapacityExceeded indicates a webhook create or edit would push
// the account address list past MaxWebhookAddresses.
var ErrAddressCapacityExceeded = errors.New("webhook address capacity exceeded")

// checkAddressCapacity fails with ErrAddressCapacityExceeded when n is over
// MaxWebhookAddresses.
func checkAddressCapacity(n int) error {
	if n > MaxWebhookAddresses {
		return fmt.Errorf("%w: %d addresses over the %d limit", ErrAddressCapacityExceeded, n, MaxWebhookAddresses)
	}

	return nil
}

// AppendAddressesToWebhook adds the given addresses to the end of the
// webhook's watched address list, preserving their order. Entries are not
// deduplicated, so appending an address the webhook already watches leaves
// two entries behind. The capacity ceiling is checked against the freshly
// fetched record before any write is attempted, so a failed append leaves
// the webhook unchanged.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - webhookID: service-assigned identifier of the webhook.
//   - addresses: account addresses to start watching.
//
// Returns:
//   - *Webhook: the record as stored after the update.
//   - error: ErrWebhookNotFound when the identifier does not exist,
//     ErrAddressCapacityExceeded when the combined list is over the limit,
//     or a RemoteCallError when a service call fails.
func (c *Client) AppendAddressesToWebhook(ctx context.Context, webhookID string, addresses []string) (*Webhook, error) {
	current, err := c.GetWebhook(ctx, webhookID)
	if err != nil {
		return nil, err
	}

	combined := make([]string, 0, len(current.AccountAddresses)+len(addresses))
	combined = append(combined, current.AccountAddresses...)
	combined = append(combined, addresses...)

	if err := checkAddressCapacity(len(combined)); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "appending webhook addresses",
		"webhook_id", webhookID,
		"current", len(current.AccountAddresses),
		"appended", len(addresses),
	)
	return c.EditWebhook(ctx, webhookID, EditWebhookRequest{AccountAddresses: combined})
}

// RemoveAddressesFromWebhook drops every occurrence of the given addresses
// from the webhook's watched address list by exact match. Addresses the
// webhook does not watch are ignored; the remaining entries keep their
// order and are not deduplicated.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - webhookID: service-assigned identifier of the webhook.
//   - addresses: account addresses to stop watching.
//
// Returns:
//   - *Webhook: the record as stored after the update.
//   - error: ErrWebhookNotFound when the identifier does not exist, or a
//     RemoteCallError when a service call fails.
func (c *Client) RemoveAddressesFromWebhook(ctx context.Context, webhookID string, addresses []string) (*Webhook, error) {
	current, err := c.GetWebhook(ctx, webhookID)
	if err != nil {
		return nil, err
	}

	removals := types.NewSet(addresses...)

	kept := make([]string, 0, len(current.AccountAddresses))
	for _, address := range current.AccountAddresses {
		if removals.Has(address) {
			continue
		}

		kept = append(kept, address)
	}

	logger.Debug(ctx, "removing webhook addresses",
		"webhook_id", webhookID,
		"current", len(current.AccountAddresses),
		"kept", len(kept),
	)
	return c.EditWebhook(ctx, webhookID, EditWebhookRequest{AccountAddresses: kept})
}
