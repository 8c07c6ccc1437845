package helius

import (
	"context"
	"net/url"

	"github.com/gabapcia/helius-go/internal/pkg/logger"
)

// EditWebhookRequest carries a partial update for an existing webhook.
// Fields left at their zero value keep the current value of the record. For
// the slice fields, nil keeps the current value while a non-nil empty slice
// explicitly clears it.
type EditWebhookRequest struct {
	WebhookURL           string
	TransactionTypes     []TransactionType
	AccountAddresses     []string
	AccountAddressOwners []string
	WebhookType          WebhookType
	AuthHeader           string
	TxnStatus            TxnStatus
	Encoding             AccountWebhookEncoding
}

// mergeWebhookEdit produces the full replacement payload for a webhook
// update. Each field takes the edit's value when one was provided and falls
// back to the current record's value otherwise; every field follows this
// single rule.
func mergeWebhookEdit(current *Webhook, req EditWebhookRequest) CreateWebhookRequest {
	merged := CreateWebhookRequest{
		WebhookURL:           current.WebhookURL,
		TransactionTypes:     current.TransactionTypes,
		AccountAddresses:     current.AccountAddresses,
		AccountAddressOwners: current.AccountAddressOwners,
		WebhookType:          current.WebhookType,
		AuthHeader:           current.AuthHeader,
		TxnStatus:            current.TxnStatus,
		Encoding:             current.Encoding,
	}

	if req.WebhookURL != "" {
		merged.WebhookURL = req.WebhookURL
	}
	if req.TransactionTypes != nil {
		merged.TransactionTypes = req.TransactionTypes
	}
	if req.AccountAddresses != nil {
		merged.AccountAddresses = req.AccountAddresses
	}
	if req.AccountAddressOwners != nil {
		merged.AccountAddressOwners = req.AccountAddressOwners
	}
	if req.WebhookType != "" {
		merged.WebhookType = req.WebhookType
	}
	if req.AuthHeader != "" {
		merged.AuthHeader = req.AuthHeader
	}
	if req.TxnStatus != "" {
		merged.TxnStatus = req.TxnStatus
	}
	if req.Encoding != "" {
		merged.Encoding = req.Encoding
	}

	return merged
}

// EditWebhook applies a partial update to an existing webhook. The current
// record is fetched first, the edit is merged over it, and the merged record
// replaces the stored one wholesale; the service has no field-level patch.
// Fields omitted from the edit keep their current values.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - webhookID: service-assigned identifier of the webhook.
//   - req: fields to change; zero-value fields are left untouched.
//
// Returns:
//   - *Webhook: the record as stored after the update.
//   - error: ErrWebhookNotFound when the identifier does not exist,
//     ErrAddressCapacityExceeded when the merged address list is over the
//     limit, or a RemoteCallError when a service call fails.
func (c *Client) EditWebhook(ctx context.Context, webhookID string, req EditWebhookRequest) (*Webhook, error) {
	current, err := c.GetWebhook(ctx, webhookID)
	if err != nil {
		return nil, err
	}

	merged := mergeWebhookEdit(current, req)

	if err := checkAddressCapacity(len(merged.AccountAddresses)); err != nil {
		return nil, err
	}

	// The service expects an address array even when empty.
	if merged.AccountAddresses == nil {
		merged.AccountAddresses = []string{}
	}

	var webhook Webhook
	if err := c.rest.Put(ctx, "/v0/webhooks/"+url.PathEscape(webhookID), merged, &webhook); err != nil {
		return nil, remoteCallError("editWebhook", err)
	}

	logger.Info(ctx, "webhook edited",
		"webhook_id", webhookID,
		"addresses", len(webhook.AccountAddresses),
	)
	return &webhook, nil
}
