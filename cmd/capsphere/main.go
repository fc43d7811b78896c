// SPDX-License-Identifier: MIT

// Command capsphere lays out a demo set of capabilities on the sphere and
// prints the resulting layout, graph, mesh statistics or label sizes.
//
//	capsphere [--config file] [--format text|json|yaml] <layout|graph|mesh|summary|font>
//
// graph also answers routing questions over the built graph:
//
//	capsphere graph --path cap-00,cap-07 --around cap-03 --hops 2
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/capsphere/observability"
)

func main() {
	err := newRootCmd().Execute()
	observability.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
