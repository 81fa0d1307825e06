package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bstree/tree/binary"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "build a tree from random values, unbalance it, then rebalance it",
	Flags: []cli.Flag{
		seedFlag,
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of random values",
			Value:   15,
			EnvVars: []string{"BST_COUNT"},
		},
		&cli.IntFlag{
			Name:    "max",
			Usage:   "random values are below this",
			Value:   100,
			EnvVars: []string{"BST_MAX"},
		},
		&cli.IntSliceFlag{
			Name:  "extra",
			Usage: "values inserted to unbalance the tree",
			Value: cli.NewIntSlice(200, 300, 400),
		},
	},
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	count, limit := cctx.Int("count"), cctx.Int("max")
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	if limit <= 0 {
		return fmt.Errorf("max must be positive, got %d", limit)
	}

	seed := seedOf(cctx)
	log.Debug("generating values", "count", count, "max", limit, "seed", seed)

	values := binary.RandomValues(count, limit, seed)
	fmt.Println("values:", values)
	fmt.Println()

	tr := binary.Build(values)
	printTree("tree created with random values:", tr)
	if err := printTraversals(tr); err != nil {
		return err
	}

	for _, k := range cctx.IntSlice("extra") {
		if !tr.Insert(k) {
			log.Info("value already in tree", "value", k)
		}
	}
	printTree(fmt.Sprintf("tree after inserting %v:", cctx.IntSlice("extra")), tr)

	tr.Rebalance()
	printTree("tree after rebalancing:", tr)

	return printTraversals(tr)
}
