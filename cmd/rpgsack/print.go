// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rpgsack/item"
)

func printItems(w io.Writer, title string, items []item.ScoredItem) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(items))
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "- %s (Weight: %d, Value: %d, Score: %d)\n", it.Name, it.Weight, it.EffectiveValue, it.Score)
	}
}

func printRaw(w io.Writer, it item.Item) {
	fmt.Fprintf(w, "- %s (Weight: %d, Value: %d)\n", it.Name, it.Weight, it.Value)
}

func printLoad(w io.Writer, weight, capacity, score int) {
	fmt.Fprintf(w, "Weight: %d/%d\n", weight, capacity)
	fmt.Fprintf(w, "Total score: %d\n", score)
}
