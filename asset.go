package helius

import "context"

// Asset is a single digital asset record as reported by the DAS index.
type Asset struct {
	Interface   string       `json:"interface"` // Asset interface, e.g. "V1_NFT"
	ID          string       `json:"id"`        // Asset id, the mint address for tokens
	Content     *Content     `json:"content,omitempty"`
	Authorities []Authority  `json:"authorities,omitempty"`
	Compression *Compression `json:"compression,omitempty"`
	Grouping    []Grouping   `json:"grouping,omitempty"`
	Royalty     *Royalty     `json:"royalty,omitempty"`
	Creators    []Creator    `json:"creators,omitempty"`
	Ownership   Ownership    `json:"ownership"`
	Supply      *Supply      `json:"supply,omitempty"`
	Mutable     bool         `json:"mutable"`
	Burnt       bool         `json:"burnt"`
}

// Content carries the off-chain metadata of an asset.
type Content struct {
	Schema   string         `json:"$schema,omitempty"`
	JSONURI  string         `json:"json_uri,omitempty"`
	Files    []File         `json:"files,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Links    map[string]any `json:"links,omitempty"`
}

// File is a single off-chain file referenced by an asset's metadata.
type File struct {
	URI    string `json:"uri,omitempty"`
	Mime   string `json:"mime,omitempty"`
	CdnURI string `json:"cdn_uri,omitempty"`
}

// Authority is an address holding some authority scope over an asset.
type Authority struct {
	Address string   `json:"address"`
	Scopes  []string `json:"scopes,omitempty"`
}

// Compression describes the state-compression proof data of an asset.
type Compression struct {
	Eligible    bool   `json:"eligible"`
	Compressed  bool   `json:"compressed"`
	DataHash    string `json:"data_hash,omitempty"`
	CreatorHash string `json:"creator_hash,omitempty"`
	AssetHash   string `json:"asset_hash,omitempty"`
	Tree        string `json:"tree,omitempty"`
	Seq         int64  `json:"seq,omitempty"`
	LeafID      int64  `json:"leaf_id,omitempty"`
}

// Grouping ties an asset to a group, most commonly its collection.
type Grouping struct {
	GroupKey   string `json:"group_key"`   // e.g. "collection"
	GroupValue string `json:"group_value"` // Group address
}

// Royalty describes the royalty configuration of an asset.
type Royalty struct {
	RoyaltyModel        string  `json:"royalty_model,omitempty"`
	Target              string  `json:"target,omitempty"`
	Percent             float64 `json:"percent"`
	BasisPoints         int     `json:"basis_points"`
	PrimarySaleHappened bool    `json:"primary_sale_happened"`
	Locked              bool    `json:"locked"`
}

// Creator is a creator entry of an asset with its royalty share.
type Creator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"`
	Verified bool   `json:"verified"`
}

// Ownership describes who owns an asset and under which model.
type Ownership struct {
	Frozen         bool   `json:"frozen"`
	Delegated      bool   `json:"delegated"`
	Delegate       string `json:"delegate,omitempty"`
	OwnershipModel string `json:"ownership_model,omitempty"` // e.g. "single"
	Owner          string `json:"owner"`
}

// Supply carries the edition supply figures of an asset.
type Supply struct {
	PrintMaxSupply     int64  `json:"print_max_supply"`
	PrintCurrentSupply int64  `json:"print_current_supply"`
	EditionNonce       *int64 `json:"edition_nonce,omitempty"`
}

// AssetList is a page of assets returned by a DAS search.
type AssetList struct {
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Page   int     `json:"page,omitempty"`
	Cursor string  `json:"cursor,omitempty"`
	Items  []Asset `json:"items"`
}

// SearchAssetsRequest carries the filter combination of a DAS search. Zero
// fields are omitted from the request, leaving the corresponding dimension
// unconstrained.
type SearchAssetsRequest struct {
	Page             int        `json:"page,omitempty"`
	Limit            int        `json:"limit,omitempty"`
	Cursor           string     `json:"cursor,omitempty"`
	Before           string     `json:"before,omitempty"`
	After            string     `json:"after,omitempty"`
	OwnerAddress     string     `json:"ownerAddress,omitempty"`
	CreatorAddress   string     `json:"creatorAddress,omitempty"`
	CreatorVerified  *bool      `json:"creatorVerified,omitempty"`
	AuthorityAddress string     `json:"authorityAddress,omitempty"`
	Grouping         []string   `json:"grouping,omitempty"` // Pair of group key and value, e.g. ["collection", <address>]
	Burnt            *bool      `json:"burnt,omitempty"`
	Frozen           *bool      `json:"frozen,omitempty"`
	Compressed       *bool      `json:"compressed,omitempty"`
	Compressible     *bool      `json:"compressible,omitempty"`
	Interface        string     `json:"interface,omitempty"`
	TokenType        string     `json:"tokenType,omitempty"`
	SortBy           *AssetSort `json:"sortBy,omitempty"`
}

// AssetSort selects the ordering of a DAS search result.
type AssetSort struct {
	SortBy        string `json:"sortBy,omitempty"`        // "created", "updated", "recent_action" or "id"
	SortDirection string `json:"sortDirection,omitempty"` // "asc" or "desc"
}

// getAssetParams is the wire shape of a getAsset call.
type getAssetParams struct {
	ID string `json:"id"`
}

// getAssetBatchParams is the wire shape of a getAssetBatch call.
type getAssetBatchParams struct {
	IDs []string `json:"ids"`
}

// GetAsset looks up a single asset by its id.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - id: asset id, the mint address for tokens.
//
// Returns:
//   - *Asset: the indexed asset record.
//   - error: a RemoteCallError when the call fails or the service reports
//     an error.
func (c *Client) GetAsset(ctx context.Context, id string) (*Asset, error) {
	return rpcCall[*Asset](ctx, c, "getAsset", getAssetParams{ID: id})
}

// GetAssetBatch looks up multiple assets by id in a single call. The result
// keeps the input order; ids unknown to the index yield nil entries.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - ids: asset ids to look up.
//
// Returns:
//   - []*Asset: one entry per input id, nil where the id is unknown.
//   - error: a RemoteCallError when the call fails or the service reports
//     an error.
func (c *Client) GetAssetBatch(ctx context.Context, ids []string) ([]*Asset, error) {
	return rpcCall[[]*Asset](ctx, c, "getAssetBatch", getAssetBatchParams{IDs: ids})
}

// SearchAssets queries the asset index with an arbitrary filter
// combination.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - req: search filters; zero fields leave their dimension unconstrained.
//
// Returns:
//   - *AssetList: the matching page of assets.
//   - error: a RemoteCallError when the call fails or the service reports
//     an error.
func (c *Client) SearchAssets(ctx context.Context, req SearchAssetsRequest) (*AssetList, error) {
	return rpcCall[*AssetList](ctx, c, "searchAssets", req)
}
