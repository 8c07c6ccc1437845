package cli

import (
	"context"

	helius "github.com/gabapcia/helius-go"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// bundlesCommand groups the transaction bundle commands. Bundle submission
// is never retried: resubmitting a landed bundle is not idempotent.
func bundlesCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "bundles",
		Description: "Submit transaction bundles for atomic execution.",
		Usage:       "helius bundles [command] [flags]",
		Commands: []*cli.Command{
			sendBundleCommand(svc),
		},
	}
}

// sendBundleCommand returns a CLI command that submits a bundle of signed
// transactions for atomic execution.
//
// Usage example:
//
//	helius bundles send --transaction <base58> --transaction <base58>
func sendBundleCommand(svc *helius.Client) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Submit a bundle of signed transactions for atomic execution.",
		Usage:       "Sends the bundle and prints its id. Must provide at least one serialized transaction, in execution order.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "transaction",
				Usage:    "Serialized signed transaction; repeatable, executed in the given order",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			bundleID, err := svc.SendBundle(ctx, c.StringSlice("transaction"))
			if err != nil {
				return err
			}

			pterm.Success.Println("bundle submitted:", bundleID)
			return nil
		},
	}
}
