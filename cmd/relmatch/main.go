// Command relmatch builds alphabet units and federations from pattern
// files and checks query patterns against them.
//
// Usage:
//
//	relmatch glyphs ABC > base.yaml
//	relmatch init letters base.yaml
//	relmatch learn letters request.yaml
//	relmatch verify letters query.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "relmatch:", err)
		os.Exit(1)
	}
}
