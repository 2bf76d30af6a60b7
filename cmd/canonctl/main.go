// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command canonctl is the operator tool for a Canon deployment: schema
// migrations, dependency checks, bulk imports and curation ingest.
package main

import (
	"fmt"
	"os"

	"github.com/taibuivan/canon/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
