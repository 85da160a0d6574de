// Package main dumps the baked-in demo snapshot as JSON.
// Useful for inspecting seed data and for fixtures in downstream tooling.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"opscore/internal/core/state"
)

func main() {
	snapshot := state.Seed()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode seed snapshot: %v\n", err)
		os.Exit(1)
	}
}
