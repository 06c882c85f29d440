// Command pathgrid solves grid path-finding problems with A* and generates
// mazes to solve.
//
//	pathgrid solve grid.yaml
//	pathgrid solve --maze --width 61 --height 31 --render terminal --delay 20ms
//	pathgrid maze --format yaml > maze.yaml
//	pathgrid heuristics
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
