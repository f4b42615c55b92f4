package main

import (
	"os"

	"github.com/harukisawai/godchecker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
