// Command bst builds binary search trees and prints them.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.lepak.sg/bstree/must"
	"go.lepak.sg/bstree/tree"
	"go.lepak.sg/bstree/tree/binary"
)

var log = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := run(os.Args); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "bst",
		Usage: "build, unbalance and rebalance binary search trees",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log at debug level",
				EnvVars: []string{"BST_DEBUG"},
			},
		},
		Before: func(cctx *cli.Context) error {
			level := slog.LevelInfo
			if cctx.Bool("debug") {
				level = slog.LevelDebug
			}
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	app.Commands = []*cli.Command{
		cmdDemo,
		cmdBuild,
		cmdRandom,
		cmdSurvey,
	}

	return app.Run(args)
}

var seedFlag = &cli.Int64Flag{
	Name:    "seed",
	Aliases: []string{"s"},
	Usage:   "random seed (default current unix time in ns)",
	EnvVars: []string{"BST_SEED"},
}

var verifyFlag = &cli.BoolFlag{
	Name:  "verify",
	Usage: "rebuild the tree from its pre- and in-order traversals and check the shape",
}

// seedOf returns the --seed flag, or the current time if it was not set.
func seedOf(cctx *cli.Context) int64 {
	if cctx.IsSet("seed") {
		return cctx.Int64("seed")
	}
	return time.Now().UnixNano()
}

func printTree(title string, tr *binary.Tree[int]) {
	fmt.Println(title)
	fmt.Print(tr.String())
	fmt.Println("balanced:", tr.IsBalanced())
	fmt.Println()
}

func printTraversals(tr *binary.Tree[int]) error {
	orders := []struct {
		name string
		f    func(func(*tree.Node[int])) error
	}{
		{"level order", tr.LevelOrder},
		{"pre-order", tr.PreOrder},
		{"in-order", tr.InOrder},
		{"post-order", tr.PostOrder},
	}

	for _, o := range orders {
		keys := make([]int, 0, tr.Len())
		err := o.f(func(n *tree.Node[int]) {
			keys = append(keys, n.Key)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
		fmt.Printf("%-12s %v\n", o.name+":", keys)
	}
	fmt.Println()

	return nil
}

// verifyShape rebuilds tr from its own pre- and in-order traversals.
// Those always describe tr, so any failure is a bug and panics.
func verifyShape(tr *binary.Tree[int]) {
	if tr.Len() == 0 {
		log.Info("empty tree, nothing to verify")
		return
	}

	pre := make([]int, 0, tr.Len())
	_ = tr.PreOrder(func(n *tree.Node[int]) {
		pre = append(pre, n.Key)
	})

	rebuilt := must.Must2(binary.FromTraversals(pre, tr.Values()))
	if rebuilt.String() != tr.String() {
		panic(fmt.Sprintf("rebuilt tree has a different shape:\n%s\nwant:\n%s", rebuilt, tr))
	}
	fmt.Println("verified: pre- and in-order traversals rebuild the same tree")
	fmt.Println()
}
