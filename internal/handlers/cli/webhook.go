package cli

import (
	"context"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// transactionTypes converts raw flag values into typed transaction types.
func transactionTypes(values []string) []helius.TransactionType {
	if values == nil {
		return nil
	}

	types := make([]helius.TransactionType, len(values))
	for i, value := range values {
		types[i] = helius.TransactionType(value)
	}
	return types
}

// webhooksCommand groups every webhook subscription management command.
func webhooksCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "webhooks",
		Description: "Manage webhook subscriptions: list, inspect, create, edit and delete them, and adjust their watched addresses.",
		Usage:       "helius webhooks [command] [flags]",
		Commands: []*cli.Command{
			listWebhooksCommand(svc, r),
			getWebhookCommand(svc, r),
			createWebhookCommand(svc),
			createCollectionWebhookCommand(svc),
			editWebhookCommand(svc),
			deleteWebhookCommand(svc),
			addAddressesCommand(svc),
			removeAddressesCommand(svc),
		},
	}
}

// listWebhooksCommand returns a CLI command that prints every webhook owned
// by the project.
//
// Usage example:
//
//	helius webhooks list
func listWebhooksCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List every webhook subscription owned by the project.",
		Usage:       "Prints all webhook subscriptions as JSON.",
		Action: func(ctx context.Context, c *cli.Command) error {
			var webhooks []helius.Webhook
			if err := r.Execute(ctx, func() error {
				var err error
				webhooks, err = svc.GetAllWebhooks(ctx)
				return err
			}); err != nil {
				return err
			}

			return printJSON(webhooks)
		},
	}
}

// getWebhookCommand returns a CLI command that fetches a single webhook
// subscription by its identifier.
//
// Usage example:
//
//	helius webhooks get --id 0e8250a1-...
func getWebhookCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "get",
		Description: "Fetch a single webhook subscription by its identifier.",
		Usage:       "Prints the webhook record as JSON. Must provide the webhook id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Webhook identifier assigned by the service",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var webhook *helius.Webhook
			if err := r.Execute(ctx, func() error {
				var err error
				webhook, err = svc.GetWebhook(ctx, c.String("id"))
				return err
			}); err != nil {
				return err
			}

			return printJSON(webhook)
		},
	}
}

// createWebhookCommand returns a CLI command that registers a new webhook
// subscription for a set of account addresses.
//
// Usage example:
//
//	helius webhooks create --url https://example.com/hook --type NFT_SALE --address <mint>
func createWebhookCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Create a webhook subscription for a set of account addresses.",
		Usage:       "Registers a new webhook. Must provide the target URL and at least one transaction type.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "URL events are delivered to",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "type",
				Usage:    "Transaction type that triggers a delivery (e.g. NFT_SALE); repeatable",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "Account address to watch; repeatable",
			},
			&cli.StringFlag{
				Name:  "webhook-type",
				Usage: "Payload family (e.g. enhanced, raw, discord)",
			},
			&cli.StringFlag{
				Name:  "auth-header",
				Usage: "Authorization header sent with every delivery",
			},
			&cli.StringFlag{
				Name:  "txn-status",
				Usage: "Transaction outcome filter (all, success or failed)",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Account data encoding for raw payloads (jsonParsed or base64)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			webhook, err := svc.CreateWebhook(ctx, helius.CreateWebhookRequest{
				WebhookURL:       c.String("url"),
				TransactionTypes: transactionTypes(c.StringSlice("type")),
				AccountAddresses: c.StringSlice("address"),
				WebhookType:      helius.WebhookType(c.String("webhook-type")),
				AuthHeader:       c.String("auth-header"),
				TxnStatus:        helius.TxnStatus(c.String("txn-status")),
				Encoding:         helius.AccountWebhookEncoding(c.String("encoding")),
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("webhook created:", webhook.WebhookID)
			return printJSON(webhook)
		},
	}
}

// createCollectionWebhookCommand returns a CLI command that resolves an NFT
// collection into its mintlist and registers a webhook watching every member.
//
// Usage example:
//
//	helius webhooks create-collection --url https://example.com/hook --type NFT_SALE --collection <address>
func createCollectionWebhookCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "create-collection",
		Description: "Create a webhook watching every current member of an NFT collection.",
		Usage:       "Resolves the collection mintlist and registers a webhook over it. Must provide the target URL, a transaction type and exactly one collection selector.",
		Flags: append(collectionFlags(),
			&cli.StringFlag{
				Name:     "url",
				Usage:    "URL events are delivered to",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "type",
				Usage:    "Transaction type that triggers a delivery (e.g. NFT_SALE); repeatable",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "webhook-type",
				Usage: "Payload family (e.g. enhanced, raw, discord)",
			},
			&cli.StringFlag{
				Name:  "auth-header",
				Usage: "Authorization header sent with every delivery",
			},
			&cli.StringFlag{
				Name:  "txn-status",
				Usage: "Transaction outcome filter (all, success or failed)",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Account data encoding for raw payloads (jsonParsed or base64)",
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			query, err := collectionQueryFromFlags(c)
			if err != nil {
				return err
			}

			webhook, err := svc.CreateCollectionWebhook(ctx, helius.CreateCollectionWebhookRequest{
				Collection:       query,
				WebhookURL:       c.String("url"),
				TransactionTypes: transactionTypes(c.StringSlice("type")),
				WebhookType:      helius.WebhookType(c.String("webhook-type")),
				AuthHeader:       c.String("auth-header"),
				TxnStatus:        helius.TxnStatus(c.String("txn-status")),
				Encoding:         helius.AccountWebhookEncoding(c.String("encoding")),
			})
			if err != nil {
				return err
			}

			pterm.Success.Println("webhook created:", webhook.WebhookID, "watching", len(webhook.AccountAddresses), "addresses")
			return printJSON(webhook)
		},
	}
}

// editWebhookCommand returns a CLI command that applies a partial update to
// an existing webhook. Only the provided flags are changed; everything else
// keeps its current value.
//
// Usage example:
//
//	helius webhooks edit --id 0e8250a1-... --url https://example.com/v2/hook
func editWebhookCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "edit",
		Description: "Edit an existing webhook subscription; only the provided flags are changed.",
		Usage:       "Applies a partial update to a webhook. Must provide the webhook id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Webhook identifier assigned by the service",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "New delivery URL",
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "New transaction type list; repeatable, replaces the current list",
			},
			&cli.StringSliceFlag{
				Name:  "address",
				Usage: "New account address list; repeatable, replaces the current list",
			},
			&cli.StringFlag{
				Name:  "webhook-type",
				Usage: "New payload family",
			},
			&cli.StringFlag{
				Name:  "auth-header",
				Usage: "New authorization header",
			},
			&cli.StringFlag{
				Name:  "txn-status",
				Usage: "New transaction outcome filter",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "New account data encoding",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := helius.EditWebhookRequest{
				WebhookURL:  c.String("url"),
				WebhookType: helius.WebhookType(c.String("webhook-type")),
				AuthHeader:  c.String("auth-header"),
				TxnStatus:   helius.TxnStatus(c.String("txn-status")),
				Encoding:    helius.AccountWebhookEncoding(c.String("encoding")),
			}
			if c.IsSet("type") {
				req.TransactionTypes = transactionTypes(c.StringSlice("type"))
			}
			if c.IsSet("address") {
				req.AccountAddresses = c.StringSlice("address")
			}

			webhook, err := svc.EditWebhook(ctx, c.String("id"), req)
			if err != nil {
				return err
			}

			pterm.Success.Println("webhook updated:", webhook.WebhookID)
			return printJSON(webhook)
		},
	}
}

// deleteWebhookCommand returns a CLI command that removes a webhook
// subscription.
//
// Usage example:
//
//	helius webhooks delete --id 0e8250a1-...
func deleteWebhookCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "delete",
		Description: "Delete a webhook subscription.",
		Usage:       "Removes the webhook. Must provide the webhook id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Webhook identifier assigned by the service",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := svc.DeleteWebhook(ctx, c.String("id")); err != nil {
				return err
			}

			pterm.Success.Println("webhook deleted:", c.String("id"))
			return nil
		},
	}
}

// addAddressesCommand returns a CLI command that appends account addresses
// to a webhook's watched list.
//
// Usage example:
//
//	helius webhooks add-addresses --id 0e8250a1-... --address <mint> --address <mint>
func addAddressesCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "add-addresses",
		Description: "Append account addresses to a webhook's watched list.",
		Usage:       "Adds addresses at the end of the watched list. Must provide the webhook id and at least one address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Webhook identifier assigned by the service",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "address",
				Usage:    "Account address to start watching; repeatable",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			webhook, err := svc.AppendAddressesToWebhook(ctx, c.String("id"), c.StringSlice("address"))
			if err != nil {
				return err
			}

			pterm.Success.Println("webhook now watches", len(webhook.AccountAddresses), "addresses")
			return printJSON(webhook)
		},
	}
}

// removeAddressesCommand returns a CLI command that removes account
// addresses from a webhook's watched list.
//
// Usage example:
//
//	helius webhooks remove-addresses --id 0e8250a1-... --address <mint>
func removeAddressesCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "remove-addresses",
		Description: "Remove account addresses from a webhook's watched list.",
		Usage:       "Drops every occurrence of the given addresses. Must provide the webhook id and at least one address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Webhook identifier assigned by the service",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "address",
				Usage:    "Account address to stop watching; repeatable",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			webhook, err := svc.RemoveAddressesFromWebhook(ctx, c.String("id"), c.StringSlice("address"))
			if err != nil {
				return err
			}

			pterm.Success.Println("webhook now watches", len(webhook.AccountAddresses), "addresses")
			return printJSON(webhook)
		},
	}
}
