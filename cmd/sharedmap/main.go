// Command sharedmap is the CLI front-end for the hierarchical
// multisection solver (SPEC_FULL.md §D.2; original: main.cpp).
package main

import "github.com/katalvlaran/sharedmap/cmd/sharedmap/cmd"

func main() {
	cmd.Execute()
}
