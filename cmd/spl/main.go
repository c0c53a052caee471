package main

import (
	"os"

	"github.com/xiam/spl/cmd/spl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
