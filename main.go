package main

import (
	"os"

	"github.com/ksalhi/refview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
