package main

import (
	"context"
	"os"

	"github.com/mrlokans/readkeeper/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := cli.Execute(context.Background(), Version+" ("+Commit+")"); err != nil {
		os.Exit(1)
	}
}
