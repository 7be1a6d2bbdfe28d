package main

import (
	"fmt"
	"os"

	"honnef.co/go/funnel/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
