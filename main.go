/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command remap rewrites bare module specifiers in JavaScript and HTML
// sources into loader-resolvable paths.
package main

import (
	"os"

	"bennypowers.dev/remap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
