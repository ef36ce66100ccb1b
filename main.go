package main

import (
	"os"

	"github.com/luthersystems/elpsnum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
