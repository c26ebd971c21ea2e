package main

import "github.com/deploymenttheory/go-uefi-guid/cmd"

func main() {
	cmd.Execute()
}
