// main is the entry point for the fairlens CLI.
package main

import (
	"github.com/fairlens/fairlens/cmd"
	"github.com/fairlens/fairlens/internal/contract"
)

func main() {
	err := cmd.Execute()
	cmd.CloseStores()
	if err != nil {
		contract.LogFatal("Cannot run fairlens", err)
	}
}
