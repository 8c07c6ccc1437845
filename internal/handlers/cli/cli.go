package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the helius CLI application.
//
// It registers all available command groups, including:
//
//   - `webhooks`: Manage webhook subscriptions, their addresses and collection-scoped creation.
//   - `mintlist`: Resolve the complete mintlist of an NFT collection.
//   - `assets`: Look up and search indexed digital assets.
//   - `fees`: Estimate priority fees.
//   - `bundles`: Submit transaction bundles.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The Helius client used by every command.
//   - r: Retry policy applied to the read-only commands.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc *helius.Client, r retry.Retry) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "helius",
		Description:           "Command-line interface for the Helius webhook, mintlist and asset APIs.",
		Usage:                 "helius [command] [flags]",
		Commands: []*cli.Command{
			webhooksCommand(svc, r),
			mintlistCommand(svc, r),
			assetsCommand(svc, r),
			feesCommand(svc, r),
			bundlesCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
