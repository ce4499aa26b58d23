// SPDX-License-Identifier: MIT

// Command rggen prints power-law degree and clique-size sequences.
package main

import (
	"github.com/katalvlaran/rggen/cmd/rggen/cmd"
)

func main() {
	cmd.Execute()
}
