package main

import (
	"os"

	"github.com/mguinhos/akitac/cmd/akitac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
