package main

import (
	"os"

	"github.com/lazypower/wordbook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
