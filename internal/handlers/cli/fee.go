package cli

import (
	"context"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/urfave/cli/v3"
)

// feesCommand groups the priority fee commands.
func feesCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "fees",
		Description: "Estimate the priority fee required to land a transaction.",
		Usage:       "helius fees [command] [flags]",
		Commands: []*cli.Command{
			estimateFeeCommand(svc, r),
		},
	}
}

// estimateFeeCommand returns a CLI command that estimates the priority fee
// for a serialized transaction or a set of account keys.
//
// Usage example:
//
//	helius fees estimate --account <address> --level High
func estimateFeeCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "estimate",
		Description: "Estimate the priority fee for a transaction or a set of accounts.",
		Usage:       "Prints the fee estimate as JSON. Provide either a serialized transaction or account keys.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "transaction",
				Usage: "Serialized transaction to estimate against",
			},
			&cli.StringSliceFlag{
				Name:  "account",
				Usage: "Account key the transaction writes to; repeatable",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Priority level to estimate for (Min, Low, Medium, High, VeryHigh or UnsafeMax)",
			},
			&cli.BoolFlag{
				Name:  "all-levels",
				Usage: "Include the estimate for every priority level",
			},
			&cli.BoolFlag{
				Name:  "recommended",
				Usage: "Return the recommended estimate",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := helius.GetPriorityFeeEstimateRequest{
				Transaction: c.String("transaction"),
				AccountKeys: c.StringSlice("account"),
			}
			if c.IsSet("level") || c.IsSet("all-levels") || c.IsSet("recommended") {
				req.Options = &helius.PriorityFeeEstimateOptions{
					PriorityLevel:               helius.PriorityLevel(c.String("level")),
					IncludeAllPriorityFeeLevels: c.Bool("all-levels"),
					Recommended:                 c.Bool("recommended"),
				}
			}

			var estimate *helius.GetPriorityFeeEstimateResponse
			if err := r.Execute(ctx, func() error {
				var err error
				estimate, err = svc.GetPriorityFeeEstimate(ctx, req)
				return err
			}); err != nil {
				return err
			}

			return printJSON(estimate)
		},
	}
}
