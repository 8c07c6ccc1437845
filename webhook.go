package helius

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gabapcia/helius-go/internal/pkg/logger"
	"github.com/gabapcia/helius-go/internal/pkg/transport/rest"
	"github.com/gabapcia/helius-go/internal/pkg/validator"
)

// TransactionType filters which transaction categories trigger a webhook
// delivery.
type TransactionType string

// Supported transaction types.
const (
	TransactionTypeAny        TransactionType = "ANY"
	TransactionTypeNFTSale    TransactionType = "NFT_SALE"
	TransactionTypeNFTListing TransactionType = "NFT_LISTING"
	TransactionTypeNFTBid     TransactionType = "NFT_BID"
	TransactionTypeNFTMint    TransactionType = "NFT_MINT"
	TransactionTypeSwap       TransactionType = "SWAP"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeBurn       TransactionType = "BURN"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdraw   TransactionType = "WITHDRAW"
)

// WebhookType selects the payload family delivered to the target URL.
type WebhookType string

// Supported webhook types.
const (
	WebhookTypeEnhanced       WebhookType = "enhanced"
	WebhookTypeEnhancedDevnet WebhookType = "enhancedDevnet"
	WebhookTypeRaw            WebhookType = "raw"
	WebhookTypeRawDevnet      WebhookType = "rawDevnet"
	WebhookTypeDiscord        WebhookType = "discord"
	WebhookTypeDiscordDevnet  WebhookType = "discordDevnet"
)

// TxnStatus filters webhook deliveries by transaction outcome.
type TxnStatus string

// Supported transaction status filters.
const (
	TxnStatusAll     TxnStatus = "all"
	TxnStatusSuccess TxnStatus = "success"
	TxnStatusFailed  TxnStatus = "failed"
)

// AccountWebhookEncoding selects the encoding of account data in raw
// webhook payloads.
type AccountWebhookEncoding string

// Supported account data encodings.
const (
	AccountWebhookEncodingJSONParsed AccountWebhookEncoding = "jsonParsed"
	AccountWebhookEncodingBase64     AccountWebhookEncoding = "base64"
)

// Webhook is a webhook subscription record as stored by the remote service.
// WebhookID and Wallet are assigned by the service and immutable; every
// other field can be changed through EditWebhook.
type Webhook struct {
	WebhookID            string                 `json:"webhookID"`                      // Service-assigned identifier
	Wallet               string                 `json:"wallet"`                         // Wallet that owns the subscription
	WebhookURL           string                 `json:"webhookURL"`                     // URL events are delivered to
	TransactionTypes     []TransactionType      `json:"transactionTypes"`               // Transaction categories that trigger a delivery
	AccountAddresses     []string               `json:"accountAddresses"`               // Watched account addresses
	AccountAddressOwners []string               `json:"accountAddressOwners,omitempty"` // Watched token account owners
	WebhookType          WebhookType            `json:"webhookType,omitempty"`          // Payload family
	AuthHeader           string                 `json:"authHeader,omitempty"`           // Authorization header sent with each delivery
	TxnStatus            TxnStatus              `json:"txnStatus,omitempty"`            // Transaction outcome filter
	Encoding             AccountWebhookEncoding `json:"encoding,omitempty"`             // Account data encoding for raw payloads
}

// CreateWebhookRequest carries the caller-supplied fields of a new webhook
// subscription. Optional fields marshal to nothing when left at their zero
// value, so server-side defaults apply.
type CreateWebhookRequest struct {
	WebhookURL           string                 `json:"webhookURL" validate:"required,url"`
	TransactionTypes     []TransactionType      `json:"transactionTypes" validate:"required,min=1"`
	AccountAddresses     []string               `json:"accountAddresses"`
	AccountAddressOwners []string               `json:"accountAddressOwners,omitempty"`
	WebhookType          WebhookType            `json:"webhookType,omitempty"`
	AuthHeader           string                 `json:"authHeader,omitempty"`
	TxnStatus            TxnStatus              `json:"txnStatus,omitempty"`
	Encoding             AccountWebhookEncoding `json:"encoding,omitempty"`
}

// GetAllWebhooks retrieves every webhook owned by the authenticated project.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//
// Returns:
//   - []Webhook: all webhook subscriptions of the project.
//   - error: a RemoteCallError when the service call fails.
func (c *Client) GetAllWebhooks(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := c.rest.Get(ctx, "/v0/webhooks", &webhooks); err != nil {
		return nil, remoteCallError("getAllWebhooks", err)
	}

	return webhooks, nil
}

// GetWebhook retrieves a single webhook by its identifier.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - webhookID: service-assigned identifier of the webhook.
//
// Returns:
//   - *Webhook: the current webhook record.
//   - error: ErrWebhookNotFound when the identifier does not exist, or a
//     RemoteCallError for any other service failure.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	var webhook Webhook
	if err := c.rest.Get(ctx, "/v0/webhooks/"+url.PathEscape(webhookID), &webhook); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrWebhookNotFound, webhookID)
		}

		return nil, remoteCallError("getWebhook", err)
	}

	return &webhook, nil
}

// CreateWebhook registers a new webhook subscription and returns the
// server-assigned record. The request is validated locally before any
// network traffic: the webhook URL and at least one transaction type are
// required, and the address list must not exceed MaxWebhookAddresses.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - req: caller-supplied fields of the new subscription.
//
// Returns:
//   - *Webhook: the created record, including its service-assigned identifier.
//   - error: validator.ErrValidationFailed or ErrAddressCapacityExceeded on
//     invalid input, or a RemoteCallError when the service call fails.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (*Webhook, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := checkAddressCapacity(len(req.AccountAddresses)); err != nil {
		return nil, err
	}

	// The service expects an address array even when empty.
	if req.AccountAddresses == nil {
		req.AccountAddresses = []string{}
	}

	var webhook Webhook
	if err := c.rest.Post(ctx, "/v0/webhooks", req, &webhook); err != nil {
		return nil, remoteCallError("createWebhook", err)
	}

	logger.Info(ctx, "webhook created",
		"webhook_id", webhook.WebhookID,
		"addresses", len(webhook.AccountAddresses),
	)
	return &webhook, nil
}

// DeleteWebhook removes the webhook with the given identifier.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - webhookID: service-assigned identifier of the webhook.
//
// Returns:
//   - error: ErrWebhookNotFound when the identifier does not exist, a
//     RemoteCallError for any other service failure, or nil on success.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := c.rest.Delete(ctx, "/v0/webhooks/"+url.PathEscape(webhookID)); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrWebhookNotFound, webhookID)
		}

		return remoteCallError("deleteWebhook", err)
	}

	logger.Info(ctx, "webhook deleted", "webhook_id", webhookID)
	return nil
}
