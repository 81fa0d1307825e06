package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bstree/tree/binary"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a balanced tree from the given integers",
	ArgsUsage: "<int> [<int> ...]",
	Flags:     []cli.Flag{verifyFlag},
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() == 0 {
			return errors.New("need at least one value")
		}

		values := make([]int, 0, cctx.Args().Len())
		for _, raw := range cctx.Args().Slice() {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("parsing value: %w", err)
			}
			values = append(values, v)
		}

		tr := binary.Build(values)
		printTree("tree:", tr)
		printHeight(tr)
		if cctx.Bool("verify") {
			verifyShape(tr)
		}

		return printTraversals(tr)
	},
}

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "insert keys 0..n-1 in a random order and show the resulting tree",
	Flags: []cli.Flag{
		seedFlag,
		verifyFlag,
		&cli.IntFlag{
			Name:    "num",
			Aliases: []string{"n"},
			Usage:   "number of nodes in the tree",
			Value:   10,
		},
		&cli.BoolFlag{
			Name:    "balanced",
			Aliases: []string{"b"},
			Usage:   "keep reshuffling until the tree happens to be balanced",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "give up on --balanced after this long",
			Value: 10 * time.Second,
		},
	},
	Action: func(cctx *cli.Context) error {
		num, seed := cctx.Int("num"), seedOf(cctx)
		if num < 0 {
			return fmt.Errorf("num must not be negative, got %d", num)
		}

		var tr *binary.Tree[int]
		attempts := 1

		if cctx.Bool("balanced") {
			ctx, cancel := context.WithTimeout(cctx.Context, cctx.Duration("timeout"))
			defer cancel()

			var err error
			tr, attempts, err = binary.BuildRandomBalanced(ctx, num, seed)
			if err != nil {
				return fmt.Errorf("no balanced tree after %d attempts: %w", attempts, err)
			}
		} else {
			tr = binary.BuildRandom(num, seed)
		}
		log.Debug("built random tree", "num", num, "seed", seed, "attempts", attempts)

		printTree("tree:", tr)
		printHeight(tr)
		fmt.Println("attempts:", attempts)
		fmt.Println()
		if cctx.Bool("verify") {
			verifyShape(tr)
		}

		return printTraversals(tr)
	},
}

func printHeight(tr *binary.Tree[int]) {
	fmt.Println("height:", tr.Height(tr.Root()), "ideal:", tr.IdealHeight())
	fmt.Println()
}
