package helius

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWebhookEdit(t *testing.T) {
	current := &Webhook{
		WebhookID:        "hook-1",
		Wallet:           "wallet-1",
		WebhookURL:       "https://example.com/hook",
		TransactionTypes: []TransactionType{TransactionTypeNFTSale},
		AccountAddresses: []string{"addr-1", "addr-2"},
		WebhookType:      WebhookTypeEnhanced,
		AuthHeader:       "secret",
		TxnStatus:        TxnStatusSuccess,
		Encoding:         AccountWebhookEncodingJSONParsed,
	}

	t.Run("keeps every current field when the edit is empty", func(t *testing.T) {
		merged := mergeWebhookEdit(current, EditWebhookRequest{})

		assert.Equal(t, CreateWebhookRequest{
			WebhookURL:       "https://example.com/hook",
			TransactionTypes: []TransactionType{TransactionTypeNFTSale},
			AccountAddresses: []string{"addr-1", "addr-2"},
			WebhookType:      WebhookTypeEnhanced,
			AuthHeader:       "secret",
			TxnStatus:        TxnStatusSuccess,
			Encoding:         AccountWebhookEncodingJSONParsed,
		}, merged)
	})

	t.Run("overrides only the provided fields", func(t *testing.T) {
		merged := mergeWebhookEdit(current, EditWebhookRequest{
			TransactionTypes: []TransactionType{TransactionTypeSwap},
			AuthHeader:       "rotated",
		})

		assert.Equal(t, []TransactionType{TransactionTypeSwap}, merged.TransactionTypes)
		assert.Equal(t, "rotated", merged.AuthHeader)

		assert.Equal(t, "https://example.com/hook", merged.WebhookURL)
		assert.Equal(t, []string{"addr-1", "addr-2"}, merged.AccountAddresses)
		assert.Equal(t, WebhookTypeEnhanced, merged.WebhookType)
		assert.Equal(t, TxnStatusSuccess, merged.TxnStatus)
		assert.Equal(t, AccountWebhookEncodingJSONParsed, merged.Encoding)
	})

	t.Run("a nil slice keeps the current address list", func(t *testing.T) {
		merged := mergeWebhookEdit(current, EditWebhookRequest{AccountAddresses: nil})
		assert.Equal(t, []string{"addr-1", "addr-2"}, merged.AccountAddresses)
	})

	t.Run("a non-nil empty slice clears the address list", func(t *testing.T) {
		merged := mergeWebhookEdit(current, EditWebhookRequest{AccountAddresses: []string{}})
		assert.Empty(t, merged.AccountAddresses)
		assert.NotNil(t, merged.AccountAddresses)
	})
}

func TestClient_EditWebhook(t *testing.T) {
	t.Run("fetches, merges and replaces the stored record", func(t *testing.T) {
		var (
			methods  []string
			gotPath  string
			captured map[string]any
		)
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)

			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(Webhook{
					WebhookID:        "hook-1",
					WebhookURL:       "https://example.com/hook",
					TransactionTypes: []TransactionType{TransactionTypeNFTSale},
					AccountAddresses: []string{"addr-1", "addr-2"},
					AuthHeader:       "secret",
				})
			case http.MethodPut:
				gotPath = r.URL.Path
				_ = json.NewDecoder(r.Body).Decode(&captured)
				json.NewEncoder(w).Encode(Webhook{
					WebhookID:        "hook-1",
					WebhookURL:       "https://example.com/hook",
					TransactionTypes: []TransactionType{TransactionTypeSwap},
					AccountAddresses: []string{"addr-1", "addr-2"},
					AuthHeader:       "secret",
				})
			}
		}))

		webhook, err := client.EditWebhook(t.Context(), "hook-1", EditWebhookRequest{
			TransactionTypes: []TransactionType{TransactionTypeSwap},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{http.MethodGet, http.MethodPut}, methods, "the current record should be fetched before the replace")
		assert.Equal(t, "/v0/webhooks/hook-1", gotPath)

		assert.Equal(t, []any{"SWAP"}, captured["transactionTypes"])
		assert.Equal(t, "https://example.com/hook", captured["webhookURL"], "omitted fields should keep their current values")
		assert.Equal(t, []any{"addr-1", "addr-2"}, captured["accountAddresses"])
		assert.Equal(t, "secret", captured["authHeader"])

		assert.Equal(t, []TransactionType{TransactionTypeSwap}, webhook.TransactionTypes)
	})

	t.Run("clears the address list when given an explicit empty slice", func(t *testing.T) {
		var captured map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(Webhook{
					WebhookID:        "hook-1",
					WebhookURL:       "https://example.com/hook",
					TransactionTypes: []TransactionType{TransactionTypeAny},
					AccountAddresses: []string{"addr-1", "addr-2"},
				})
			case http.MethodPut:
				_ = json.NewDecoder(r.Body).Decode(&captured)
				json.NewEncoder(w).Encode(Webhook{WebhookID: "hook-1"})
			}
		}))

		_, err := client.EditWebhook(t.Context(), "hook-1", EditWebhookRequest{
			AccountAddresses: []string{},
		})
		require.NoError(t, err)

		assert.Equal(t, []any{}, captured["accountAddresses"])
	})

	t.Run("fails without writing when the merged address list is over the limit", func(t *testing.T) {
		var puts int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(Webhook{
					WebhookID:        "hook-1",
					WebhookURL:       "https://example.com/hook",
					TransactionTypes: []TransactionType{TransactionTypeAny},
				})
			case http.MethodPut:
				puts++
			}
		}))

		_, err := client.EditWebhook(t.Context(), "hook-1", EditWebhookRequest{
			AccountAddresses: sequentialAddresses(MaxWebhookAddresses + 1),
		})
		assert.ErrorIs(t, err, ErrAddressCapacityExceeded)
		assert.Zero(t, puts, "a rejected edit should never reach the service")
	})

	t.Run("maps a missing webhook to ErrWebhookNotFound", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.EditWebhook(t.Context(), "hook-404", EditWebhookRequest{AuthHeader: "x"})
		assert.ErrorIs(t, err, ErrWebhookNotFound)
	})

	t.Run("wraps a failed replace with the operation name", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(Webhook{
					WebhookID:        "hook-1",
					WebhookURL:       "https://example.com/hook",
					TransactionTypes: []TransactionType{TransactionTypeAny},
				})
			case http.MethodPut:
				w.WriteHeader(http.StatusBadRequest)
			}
		}))

		_, err := client.EditWebhook(t.Context(), "hook-1", EditWebhookRequest{AuthHeader: "x"})

		var remoteErr *RemoteCallError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "editWebhook", remoteErr.Op)
	})
}
