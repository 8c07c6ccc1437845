package helius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/helius-go/internal/pkg/logger"
)

// ErrInvalidCollectionQuery indicates a collection query does not carry
// exactly one selector with at least one address.
var ErrInvalidCollectionQuery = errors.New("collection query must carry exactly one selector")

// collectionSelector discriminates the two mutually exclusive ways of
// identifying a collection.
type collectionSelector uint8

const (
	selectorNone collectionSelector = iota
	selectorFirstVerifiedCreators
	selectorVerifiedCollectionAddresses
)

// CollectionQuery identifies an NFT collection either by its first verified
// creators or by its verified collection addresses. The two selectors are
// mutually exclusive by construction; use CollectionByCreators or
// CollectionByAddresses to build a query. The zero value selects nothing
// and fails validation.
type CollectionQuery struct {
	selector  collectionSelector
	addresses []string
}

// CollectionByCreators builds a query matching collections whose first
// verified creator is one of the given addresses.
func CollectionByCreators(creators ...string) CollectionQuery {
	return CollectionQuery{
		selector:  selectorFirstVerifiedCreators,
		addresses: creators,
	}
}

// CollectionByAddresses builds a query matching the given verified
// collection addresses.
func CollectionByAddresses(collections ...string) CollectionQuery {
	return CollectionQuery{
		selector:  selectorVerifiedCollectionAddresses,
		addresses: collections,
	}
}

// validate fails with ErrInvalidCollectionQuery when the query carries no
// selector or no addresses. Address contents are not inspected locally;
// rejecting unknown addresses is the remote service's responsibility.
func (q CollectionQuery) validate() error {
	if q.selector == selectorNone {
		return fmt.Errorf("%w: no selector set", ErrInvalidCollectionQuery)
	}
	if len(q.addresses) == 0 {
		return fmt.Errorf("%w: no addresses given", ErrInvalidCollectionQuery)
	}

	return nil
}

// collectionQueryJSON is the wire shape of a collection query. Exactly one
// of the two keys is present in a valid document.
type collectionQueryJSON struct {
	FirstVerifiedCreators       []string `json:"firstVerifiedCreators,omitempty"`
	VerifiedCollectionAddresses []string `json:"verifiedCollectionAddresses,omitempty"`
}

// MarshalJSON encodes the query as an object holding the single key that
// matches its selector. Marshaling an invalid query fails with
// ErrInvalidCollectionQuery.
func (q CollectionQuery) MarshalJSON() ([]byte, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	var wire collectionQueryJSON
	switch q.selector {
	case selectorFirstVerifiedCreators:
		wire.FirstVerifiedCreators = q.addresses
	case selectorVerifiedCollectionAddresses:
		wire.VerifiedCollectionAddresses = q.addresses
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes the wire shape, failing with
// ErrInvalidCollectionQuery when both or neither selector key is present.
func (q *CollectionQuery) UnmarshalJSON(data []byte) error {
	var wire collectionQueryJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch {
	case wire.FirstVerifiedCreators != nil && wire.VerifiedCollectionAddresses != nil:
		return fmt.Errorf("%w: both selectors present", ErrInvalidCollectionQuery)
	case wire.FirstVerifiedCreators != nil:
		*q = CollectionByCreators(wire.FirstVerifiedCreators...)
	case wire.VerifiedCollectionAddresses != nil:
		*q = CollectionByAddresses(wire.VerifiedCollectionAddresses...)
	default:
		return fmt.Errorf("%w: no selector present", ErrInvalidCollectionQuery)
	}

	return nil
}

// CreateCollectionWebhookRequest describes a webhook that should watch
// every current member of an NFT collection. The address list is resolved
// from the collection query at creation time; optional fields behave as in
// CreateWebhookRequest.
type CreateCollectionWebhookRequest struct {
	Collection       CollectionQuery
	WebhookURL       string
	TransactionTypes []TransactionType
	WebhookType      WebhookType
	AuthHeader       string
	TxnStatus        TxnStatus
	Encoding         AccountWebhookEncoding
}

// buildCollectionWebhookRequest derives the create payload for a collection
// webhook from a fully drained mintlist. The address list is exactly the
// drained mint addresses in drain order; the caller's optional fields carry
// over unchanged.
func buildCollectionWebhookRequest(req CreateCollectionWebhookRequest, items []MintlistItem) CreateWebhookRequest {
	addresses := make([]string, len(items))
	for i, item := range items {
		addresses[i] = item.Mint
	}

	return CreateWebhookRequest{
		WebhookURL:       req.WebhookURL,
		TransactionTypes: req.TransactionTypes,
		AccountAddresses: addresses,
		WebhookType:      req.WebhookType,
		AuthHeader:       req.AuthHeader,
		TxnStatus:        req.TxnStatus,
		Encoding:         req.Encoding,
	}
}

// CreateCollectionWebhook resolves the collection query into its complete
// current mintlist and creates a webhook watching every member address. The
// resolution drains the mintlist page by page before anything is created,
// so a failure on any page aborts the whole operation. Membership is
// captured at creation time; tokens minted into the collection later are
// not picked up.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - req: collection query plus the webhook fields to create.
//
// Returns:
//   - *Webhook: the created record watching every collection member.
//   - error: ErrInvalidCollectionQuery when the query is malformed,
//     validation or capacity errors from webhook creation, or a
//     RemoteCallError when a service call fails.
func (c *Client) CreateCollectionWebhook(ctx context.Context, req CreateCollectionWebhookRequest) (*Webhook, error) {
	items, err := c.GetMintlist(ctx, req.Collection, DefaultMintlistPageSize)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "collection resolved", "mints", len(items))
	return c.CreateWebhook(ctx, buildCollectionWebhookRequest(req, items))
}
