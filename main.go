package main

import (
	"os"

	"github.com/c4soto/resumemate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
