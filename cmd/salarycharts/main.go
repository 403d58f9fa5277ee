// Package main is the entry point of the salarycharts CLI. It splits date and
// salary ranges into chart buckets, bands salaries by grade and builds
// week-by-week salary charts from CSV samples.
package main

import (
	"os"

	"github.com/Techinterview-space/web-api-sub003/cmd/salarycharts/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
