// main is the entry point for the gazer CLI.
package main

import (
	"os"

	"github.com/huangsam/gazer/cmd"
	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
)

func main() {
	err := cmd.Execute()

	// Close store connections before exiting so os.Exit does not skip them.
	iocache.CloseStores()

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
