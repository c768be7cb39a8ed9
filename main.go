package main

import (
	"os"

	"github.com/primovera12/load-planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
