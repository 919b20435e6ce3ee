package main

import (
	"os"

	"github.com/dbeccan-ai/debshub-diagnostics-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
