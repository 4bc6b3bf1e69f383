package main

import (
	"os"

	"github.com/katalvlaran/paintmix/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
