// Command stnuctl is the batch-runner CLI of spec.md §6: load STNU JSON
// networks, DC-check or repair them, simulate dispatch, or sweep a whole
// directory and report expected-vs-observed controllability.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stnu/cmd/stnuctl/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
