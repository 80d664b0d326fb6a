package main

import (
	"os"

	"github.com/26ideas-youngfounders/scoreboard-api/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
