// SPDX-License-Identifier: MIT

// Command rpgsack plans RPG backpacks: it scores a catalog for a persona,
// packs the best set under a weight limit and reconciles saved backpacks
// with freshly found loot.
//
// Usage:
//
//	rpgsack solve   [flags]          best backpack from the whole catalog
//	rpgsack loot    [flags]          visit the dungeon and update a saved slot
//	rpgsack catalog [flags] [name…]  list or look up catalog items
//	rpgsack slots   [flags]          list saved backpack slots
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "rpgsack:", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errUsage) || errors.Is(err, pflag.ErrHelp) {
		return 2
	}
	return 1
}
