package helius

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/helius-go/internal/pkg/logger"
)

// DefaultMintlistPageSize is the mintlist page size used when the caller
// does not provide one.
const DefaultMintlistPageSize = 10_000

// ErrTooManyMintlistPages indicates a mintlist drain hit the page ceiling
// configured with WithMaxMintlistPages before the service stopped returning
// pagination tokens.
var ErrTooManyMintlistPages = errors.New("mintlist drain exceeded the configured page limit")

// MintlistItem is a single member of a collection's mintlist.
type MintlistItem struct {
	Mint string `json:"mint"` // Mint account address of the collection member
	Name string `json:"name"` // Display name of the token
}

// mintlistRequest is the wire shape of a mintlist page request.
type mintlistRequest struct {
	Query   CollectionQuery `json:"query"`
	Options mintlistOptions `json:"options"`
}

// mintlistOptions carries the page size and cursor of a mintlist page request.
type mintlistOptions struct {
	Limit           int    `json:"limit,omitempty"`
	PaginationToken string `json:"paginationToken,omitempty"`
}

// MintlistPage is one page of a collection's mintlist. A non-empty
// PaginationToken signals that more pages exist.
type MintlistPage struct {
	Result          []MintlistItem `json:"result"`
	PaginationToken string         `json:"paginationToken,omitempty"`
}

// GetMintlistPage fetches a single mintlist page for the given collection
// query.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - query: collection selector; must carry exactly one selector.
//   - pageSize: maximum items per page; zero or less falls back to
//     DefaultMintlistPageSize.
//   - cursor: pagination token of the page to fetch; empty requests the
//     first page.
//
// Returns:
//   - *MintlistPage: the page items plus the token of the next page, if any.
//   - error: ErrInvalidCollectionQuery when the query is malformed, or a
//     RemoteCallError when the service call fails.
func (c *Client) GetMintlistPage(ctx context.Context, query CollectionQuery, pageSize int, cursor string) (*MintlistPage, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	if pageSize <= 0 {
		pageSize = DefaultMintlistPageSize
	}

	req := mintlistRequest{
		Query: query,
		Options: mintlistOptions{
			Limit:           pageSize,
			PaginationToken: cursor,
		},
	}

	var page MintlistPage
	if err := c.rest.Post(ctx, "/v1/mintlist", req, &page); err != nil {
		return nil, remoteCallError("getMintlist", err)
	}

	return &page, nil
}

// GetMintlist drains the complete mintlist for the given collection query,
// fetching one page at a time and following pagination tokens until the
// service stops returning one. The drain is all-or-nothing: a failure on
// any page discards the partially accumulated items. Termination depends on
// the service eventually ending the token chain; WithMaxMintlistPages puts
// a client-side ceiling on the drain when that cannot be trusted.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - query: collection selector; must carry exactly one selector.
//   - pageSize: maximum items per page; zero or less falls back to
//     DefaultMintlistPageSize.
//
// Returns:
//   - []MintlistItem: every collection member, in the order the service
//     returned them.
//   - error: ErrInvalidCollectionQuery when the query is malformed,
//     ErrTooManyMintlistPages when the page ceiling is hit, or a
//     RemoteCallError when a page fetch fails.
func (c *Client) GetMintlist(ctx context.Context, query CollectionQuery, pageSize int) ([]MintlistItem, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	var (
		items  []MintlistItem
		cursor string
		pages  int
	)
	for {
		if c.maxMintlistPages > 0 && pages >= c.maxMintlistPages {
			return nil, fmt.Errorf("%w: %d pages fetched", ErrTooManyMintlistPages, pages)
		}

		page, err := c.GetMintlistPage(ctx, query, pageSize, cursor)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Result...)
		pages++

		logger.Debug(ctx, "mintlist page drained",
			"page", pages,
			"items", len(page.Result),
			"more", page.PaginationToken != "",
		)

		if page.PaginationToken == "" {
			return items, nil
		}
		cursor = page.PaginationToken
	}
}
