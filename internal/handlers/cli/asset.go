package cli

import (
	"context"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/urfave/cli/v3"
)

// assetsCommand groups the digital asset lookup commands.
func assetsCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "assets",
		Description: "Look up digital assets by id or search them by owner, creator or collection.",
		Usage:       "helius assets [command] [flags]",
		Commands: []*cli.Command{
			getAssetCommand(svc, r),
			searchAssetsCommand(svc, r),
		},
	}
}

// getAssetCommand returns a CLI command that fetches one or more digital
// assets by id. A single id uses the point lookup, multiple ids use the
// batch lookup.
//
// Usage example:
//
//	helius assets get --id <mint> --id <mint>
func getAssetCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "get",
		Description: "Fetch digital assets by their ids.",
		Usage:       "Prints the asset records as JSON. Must provide at least one asset id.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "id",
				Usage:    "Asset id to fetch; repeatable",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ids := c.StringSlice("id")

			if len(ids) == 1 {
				var asset *helius.Asset
				if err := r.Execute(ctx, func() error {
					var err error
					asset, err = svc.GetAsset(ctx, ids[0])
					return err
				}); err != nil {
					return err
				}

				return printJSON(asset)
			}

			var assets []*helius.Asset
			if err := r.Execute(ctx, func() error {
				var err error
				assets, err = svc.GetAssetBatch(ctx, ids)
				return err
			}); err != nil {
				return err
			}

			return printJSON(assets)
		},
	}
}

// searchAssetsCommand returns a CLI command that searches digital assets by
// owner, creator or collection.
//
// Usage example:
//
//	helius assets search --owner <address> --limit 50
func searchAssetsCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "search",
		Description: "Search digital assets by owner, creator or collection.",
		Usage:       "Prints the matching asset page as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "owner",
				Usage: "Owner address to filter by",
			},
			&cli.StringFlag{
				Name:  "creator",
				Usage: "Creator address to filter by",
			},
			&cli.StringFlag{
				Name:  "collection",
				Usage: "Collection address to filter by",
			},
			&cli.BoolFlag{
				Name:  "compressed",
				Usage: "Restrict the search to compressed (or uncompressed) assets",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of assets per page",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number to fetch, starting at 1",
			},
			&cli.StringFlag{
				Name:  "cursor",
				Usage: "Pagination cursor from a previous page",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := helius.SearchAssetsRequest{
				OwnerAddress:   c.String("owner"),
				CreatorAddress: c.String("creator"),
				Limit:          int(c.Int("limit")),
				Page:           int(c.Int("page")),
				Cursor:         c.String("cursor"),
			}
			if collection := c.String("collection"); collection != "" {
				req.Grouping = []string{"collection", collection}
			}
			if c.IsSet("compressed") {
				compressed := c.Bool("compressed")
				req.Compressed = &compressed
			}

			var assets *helius.AssetList
			if err := r.Execute(ctx, func() error {
				var err error
				assets, err = svc.SearchAssets(ctx, req)
				return err
			}); err != nil {
				return err
			}

			return printJSON(assets)
		},
	}
}
