package main

import (
	"os"

	"github.com/jask/devfolio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
