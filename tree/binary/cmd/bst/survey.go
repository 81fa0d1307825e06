package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bstree/tree/binary"
	"golang.org/x/sync/errgroup"
)

var cmdSurvey = &cli.Command{
	Name:  "survey",
	Usage: "build many random-order trees and report how often they come out balanced",
	Flags: []cli.Flag{
		seedFlag,
		&cli.IntFlag{
			Name:  "trees",
			Usage: "number of trees to build",
			Value: 1000,
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "number of keys in each tree",
			Value: 15,
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "trees built at the same time",
			Value:   runtime.GOMAXPROCS(0),
			EnvVars: []string{"BST_WORKERS"},
		},
	},
	Action: runSurvey,
}

type surveyResult struct {
	height   int
	balanced bool
}

func runSurvey(cctx *cli.Context) error {
	trees, size, workers := cctx.Int("trees"), cctx.Int("size"), cctx.Int("workers")
	if trees <= 0 || size < 0 || workers <= 0 {
		return fmt.Errorf("trees and workers must be positive and size not negative, "+
			"got trees=%d size=%d workers=%d", trees, size, workers)
	}
	seed := seedOf(cctx)

	// every tree is built and inspected by a single goroutine
	results := make([]surveyResult, trees)
	g, ctx := errgroup.WithContext(cctx.Context)
	g.SetLimit(workers)

	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr := binary.BuildRandom(size, seed+int64(i))
			results[i] = surveyResult{
				height:   tr.Height(tr.Root()),
				balanced: tr.IsBalanced(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("survey: %w", err)
	}

	balanced, heights := 0, 0
	for _, r := range results {
		if r.balanced {
			balanced++
		}
		heights += r.height
	}

	keys := make([]int, size)
	for k := range keys {
		keys[k] = k
	}
	ideal := binary.Build(keys)

	log.Info("survey done", "trees", trees, "size", size, "workers", workers, "seed", seed)
	fmt.Printf("balanced:       %d/%d (%.2f%%)\n", balanced, trees, 100*float64(balanced)/float64(trees))
	fmt.Printf("average height: %.2f\n", float64(heights)/float64(trees))
	fmt.Printf("ideal height:   %d\n", ideal.Height(ideal.Root()))

	return nil
}
