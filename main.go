// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/rtshell/rtshell/cmd/rtsh"

func main() {
	cmd.Execute()
}
