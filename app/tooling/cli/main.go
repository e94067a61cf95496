package main

import "github.com/chainlabs/chainsim/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
