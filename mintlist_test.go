package helius

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabapcia/helius-go/internal/pkg/transport/rest"
)

// mintItems builds n sequential mintlist members starting at index start.
func mintItems(start, n int) []MintlistItem {
	items := make([]MintlistItem, n)
	for i := range items {
		items[i] = MintlistItem{
			Mint: fmt.Sprintf("mint-%d", start+i),
			Name: fmt.Sprintf("Token #%d", start+i),
		}
	}
	return items
}

func TestClient_GetMintlistPage(t *testing.T) {
	t.Run("posts the query with page size and cursor", func(t *testing.T) {
		var (
			gotPath  string
			captured map[string]any
		)
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&captured)
			json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(0, 2)})
		}))

		page, err := client.GetMintlistPage(t.Context(), CollectionByCreators("creator-1"), 500, "cursor-1")
		require.NoError(t, err)

		assert.Equal(t, "/v1/mintlist", gotPath)
		assert.Equal(t, map[string]any{"firstVerifiedCreators": []any{"creator-1"}}, captured["query"])
		assert.Equal(t, map[string]any{"limit": float64(500), "paginationToken": "cursor-1"}, captured["options"])
		assert.Len(t, page.Result, 2)
	})

	t.Run("falls back to the default page size when given zero", func(t *testing.T) {
		var captured map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&captured)
			json.NewEncoder(w).Encode(MintlistPage{})
		}))

		_, err := client.GetMintlistPage(t.Context(), CollectionByCreators("creator-1"), 0, "")
		require.NoError(t, err)

		options, ok := captured["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(DefaultMintlistPageSize), options["limit"])
	})

	t.Run("omits the pagination token on the first page", func(t *testing.T) {
		var captured map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&captured)
			json.NewEncoder(w).Encode(MintlistPage{})
		}))

		_, err := client.GetMintlistPage(t.Context(), CollectionByCreators("creator-1"), 10, "")
		require.NoError(t, err)

		options, ok := captured["options"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, options, "paginationToken")
	})

	t.Run("rejects an invalid query before any network traffic", func(t *testing.T) {
		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))

		_, err := client.GetMintlistPage(t.Context(), CollectionQuery{}, 10, "")
		assert.ErrorIs(t, err, ErrInvalidCollectionQuery)
		assert.Zero(t, requests)
	})

	t.Run("wraps service failures with the operation name", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		_, err := client.GetMintlistPage(t.Context(), CollectionByCreators("creator-1"), 10, "")

		var remoteErr *RemoteCallError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "getMintlist", remoteErr.Op)
	})
}

func TestClient_GetMintlist(t *testing.T) {
	t.Run("drains every page following the pagination tokens", func(t *testing.T) {
		var cursors []string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req mintlistRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			cursors = append(cursors, req.Options.PaginationToken)

			switch req.Options.PaginationToken {
			case "":
				json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(0, 2), PaginationToken: "token-2"})
			case "token-2":
				json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(2, 2), PaginationToken: "token-3"})
			default:
				json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(4, 1)})
			}
		}))

		items, err := client.GetMintlist(t.Context(), CollectionByCreators("creator-1"), 2)
		require.NoError(t, err)

		assert.Equal(t, []string{"", "token-2", "token-3"}, cursors, "each page should be requested exactly once, in token order")
		require.Len(t, items, 5)
		for i, item := range items {
			assert.Equal(t, fmt.Sprintf("mint-%d", i), item.Mint)
		}
	})

	t.Run("drains a large collection across full pages", func(t *testing.T) {
		pages := map[string]MintlistPage{
			"":       {Result: mintItems(0, DefaultMintlistPageSize), PaginationToken: "page-2"},
			"page-2": {Result: mintItems(DefaultMintlistPageSize, DefaultMintlistPageSize), PaginationToken: "page-3"},
			"page-3": {Result: mintItems(2*DefaultMintlistPageSize, 3)},
		}

		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++

			var req mintlistRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(pages[req.Options.PaginationToken])
		}))

		items, err := client.GetMintlist(t.Context(), CollectionByAddresses("collection-1"), 0)
		require.NoError(t, err)

		require.Len(t, items, 2*DefaultMintlistPageSize+3)
		assert.Equal(t, 3, requests)

		assert.Equal(t, "mint-0", items[0].Mint)
		assert.Equal(t, "mint-9999", items[DefaultMintlistPageSize-1].Mint)
		assert.Equal(t, "mint-10000", items[DefaultMintlistPageSize].Mint)
		assert.Equal(t, "mint-20002", items[len(items)-1].Mint)
	})

	t.Run("returns an error and no items when a page fails", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req mintlistRequest
			_ = json.NewDecoder(r.Body).Decode(&req)

			if req.Options.PaginationToken == "" {
				json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(0, 2), PaginationToken: "token-2"})
				return
			}
			w.WriteHeader(http.StatusBadRequest)
		}))

		items, err := client.GetMintlist(t.Context(), CollectionByCreators("creator-1"), 2)
		assert.Nil(t, items, "a failed drain should not hand back partial results")
		assert.ErrorIs(t, err, rest.ErrUnexpectedStatus)
	})

	t.Run("fails once the configured page ceiling is hit", func(t *testing.T) {
		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			json.NewEncoder(w).Encode(MintlistPage{Result: mintItems(0, 1), PaginationToken: "again"})
		}), WithMaxMintlistPages(2))

		_, err := client.GetMintlist(t.Context(), CollectionByCreators("creator-1"), 1)
		assert.ErrorIs(t, err, ErrTooManyMintlistPages)
		assert.Equal(t, 2, requests)
	})

	t.Run("rejects an invalid query before any network traffic", func(t *testing.T) {
		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))

		_, err := client.GetMintlist(t.Context(), CollectionByAddresses(), 10)
		assert.ErrorIs(t, err, ErrInvalidCollectionQuery)
		assert.Zero(t, requests)
	})
}
