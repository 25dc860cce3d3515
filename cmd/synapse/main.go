package main

import (
	"os"

	"github.com/rustyeddy/synapse/cmd/synapse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
