// Package helius is a typed Go client for the Helius indexing and webhook
// service. It manages server-side webhook subscriptions (including
// collection-scoped webhooks resolved through the mintlist API), and exposes
// the DAS asset read methods, priority fee estimation, and bundle submission
// over a single JSON-RPC dispatcher.
//
// A Client is constructed from an API key and an optional cluster selection:
//
//	client, err := helius.New(apiKey, helius.WithCluster(helius.ClusterDevnet))
//	if err != nil {
//		// ...
//	}
//
//	webhook, err := client.CreateWebhook(ctx, helius.CreateWebhookRequest{
//		WebhookURL:       "https://example.com/hook",
//		TransactionTypes: []helius.TransactionType{helius.TransactionTypeNFTSale},
//		AccountAddresses: []string{mintAddress},
//	})
//
// All operations are synchronous and issue at most one request at a time;
// the Client itself is safe for concurrent use.
package helius
