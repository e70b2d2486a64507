// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/argvkit/argvkit/cmd/argvkit"

func main() {
	cmd.Execute()
}
