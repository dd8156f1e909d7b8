package main

import (
	"os"

	"github.com/clinicops/pmplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
