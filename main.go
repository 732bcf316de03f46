package main

import (
	"os"

	"github.com/stylemart/stylemart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
