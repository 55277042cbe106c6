// main is the entry point for the buildsize CLI.
package main

import (
	"os"

	"github.com/huangsam/buildsize/cmd"
	"github.com/huangsam/buildsize/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
