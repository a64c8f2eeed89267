package main

import (
	"fmt"
	"os"

	"github.com/tana-dev/tana/internal/cli"
)

const appName = "tana"

// These variables are set in build step
var (
	version   = "unset"
	revision  = "unset"
	buildDate = "unknown"
)

func main() {
	if err := cli.Run(cli.Version{
		AppName:   appName,
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
