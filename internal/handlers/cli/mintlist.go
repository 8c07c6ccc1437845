package cli

import (
	"context"
	"errors"

	helius "github.com/gabapcia/helius-go"
	"github.com/gabapcia/helius-go/internal/pkg/resilience/retry"

	"github.com/urfave/cli/v3"
)

// collectionFlags returns the flag pair shared by every command that selects
// an NFT collection. Exactly one of the two must be provided.
func collectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "creator",
			Usage: "First verified creator address of the collection; repeatable",
		},
		&cli.StringSliceFlag{
			Name:  "collection",
			Usage: "Verified collection address; repeatable",
		},
	}
}

// collectionQueryFromFlags builds a collection query from the shared
// selector flags, enforcing that exactly one selector kind was provided.
func collectionQueryFromFlags(c *cli.Command) (helius.CollectionQuery, error) {
	var (
		creators    = c.StringSlice("creator")
		collections = c.StringSlice("collection")
	)

	switch {
	case len(creators) > 0 && len(collections) > 0:
		return helius.CollectionQuery{}, errors.New("the --creator and --collection flags are mutually exclusive")
	case len(creators) > 0:
		return helius.CollectionByCreators(creators...), nil
	case len(collections) > 0:
		return helius.CollectionByAddresses(collections...), nil
	default:
		return helius.CollectionQuery{}, errors.New("one of the --creator or --collection flags is required")
	}
}

// mintlistCommand returns a CLI command that drains the full mintlist of an
// NFT collection and prints every member.
//
// Usage example:
//
//	helius mintlist --collection <address>
func mintlistCommand(svc *helius.Client, r retry.Retry) *cli.Command {
	return &cli.Command{
		Name:        "mintlist",
		Description: "Resolve every mint address belonging to an NFT collection.",
		Usage:       "Drains the collection mintlist page by page and prints it as JSON. Must provide exactly one collection selector.",
		Flags: append(collectionFlags(),
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "Number of items requested per page (defaults to the service maximum)",
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			query, err := collectionQueryFromFlags(c)
			if err != nil {
				return err
			}

			var items []helius.MintlistItem
			if err := r.Execute(ctx, func() error {
				var err error
				items, err = svc.GetMintlist(ctx, query, int(c.Int("page-size")))
				return err
			}); err != nil {
				return err
			}

			return printJSON(items)
		},
	}
}
