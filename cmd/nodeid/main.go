package main

import (
	"os"

	"github.com/uastack/nodeid/cmd/nodeid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
