// Package main is the entry point for the study-korean CLI.
package main

import (
	"os"

	"github.com/ippo615/study-korean/cmd/hangul/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
